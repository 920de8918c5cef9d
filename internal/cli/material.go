package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/lustre/internal/colour"
	"github.com/jmylchreest/lustre/internal/glass"
	"github.com/jmylchreest/lustre/internal/image"
	"github.com/spf13/cobra"
)

var (
	// Material command flags
	materialFormat    string
	materialIOR       float64
	materialRoughness float64
	materialThickness float64
	materialNoise     float64
	materialTint      string
	materialEdgePower float64
	materialContext   string
	materialViewAngle float64
	materialBackdrop  string
)

// materialCmd represents the material command
var materialCmd = &cobra.Command{
	Use:   "material [preset]",
	Short: "Evaluate a glass material into surface properties",
	Long: `Evaluate a glass material under an evaluation context and print the
derived surface properties: opacity, Fresnel reflectances, per-channel
transmittance, scattering radius and the specular highlight parameters.

The preset argument selects a starting material (clear, regular, thick,
frosted; default regular). Flags override individual parameters. The
context selects the viewing environment (default, dark, oblique, dim),
and --backdrop samples the backdrop colour from a wallpaper image.

Examples:
  # The frosted preset under default conditions
  lustre material frosted

  # Custom heavy glass viewed at a grazing angle
  lustre material --ior 1.8 --thickness 8 --view-angle 75

  # Evaluate against a wallpaper's dominant colour
  lustre material regular --backdrop wallpaper.jpg --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMaterial,
}

func init() {
	materialCmd.Flags().StringVarP(&materialFormat, "format", "f", "table", "output format (table, json)")
	materialCmd.Flags().Float64Var(&materialIOR, "ior", 0, "index of refraction (1.0-2.5)")
	materialCmd.Flags().Float64Var(&materialRoughness, "roughness", -1, "surface roughness (0-1)")
	materialCmd.Flags().Float64Var(&materialThickness, "thickness", 0, "pane thickness in mm")
	materialCmd.Flags().Float64Var(&materialNoise, "noise", -1, "noise scale (0-1)")
	materialCmd.Flags().StringVar(&materialTint, "tint", "", "body tint as a hex colour")
	materialCmd.Flags().Float64Var(&materialEdgePower, "edge-power", 0, "Fresnel edge falloff exponent (1.0-4.0)")
	materialCmd.Flags().StringVar(&materialContext, "context", "default", "evaluation context (default, dark, oblique, dim)")
	materialCmd.Flags().Float64Var(&materialViewAngle, "view-angle", -1, "viewing angle in degrees from the normal")
	materialCmd.Flags().StringVar(&materialBackdrop, "backdrop", "", "image file to sample the backdrop colour from")
}

// presetMaterial resolves a preset name.
func presetMaterial(name string) (glass.Material, error) {
	switch strings.ToLower(name) {
	case "", "regular":
		return glass.Regular(), nil
	case "clear":
		return glass.Clear(), nil
	case "thick":
		return glass.Thick(), nil
	case "frosted":
		return glass.Frosted(), nil
	default:
		return glass.Material{}, fmt.Errorf("unknown preset: %s (want clear, regular, thick or frosted)", name)
	}
}

// namedContext resolves an evaluation context name.
func namedContext(name string) (glass.Context, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return glass.DefaultContext(), nil
	case "dark":
		return glass.OverDark(), nil
	case "oblique":
		return glass.Oblique(), nil
	case "dim":
		return glass.Dim(), nil
	default:
		return glass.Context{}, fmt.Errorf("unknown context: %s (want default, dark, oblique or dim)", name)
	}
}

// buildMaterial applies the override flags on top of the preset and
// validates the result.
func buildMaterial(preset glass.Material) (glass.Material, error) {
	b := glass.From(preset)
	if materialIOR > 0 {
		b = b.WithIOR(materialIOR)
	}
	if materialRoughness >= 0 {
		b = b.WithRoughness(materialRoughness)
	}
	if materialThickness > 0 {
		b = b.WithThickness(materialThickness)
	}
	if materialNoise >= 0 {
		b = b.WithNoiseScale(materialNoise)
	}
	if materialEdgePower > 0 {
		b = b.WithEdgePower(materialEdgePower)
	}
	if materialTint != "" {
		c, err := colour.FromHex(materialTint)
		if err != nil {
			return glass.Material{}, fmt.Errorf("invalid tint: %w", err)
		}
		b = b.WithTint(colour.ToOKLCH(c))
	}
	return b.Build()
}

// buildContext resolves the context flags, sampling the backdrop image
// when one is given.
func buildContext() (glass.Context, error) {
	ctx, err := namedContext(materialContext)
	if err != nil {
		return glass.Context{}, err
	}
	if materialViewAngle >= 0 {
		ctx = ctx.WithViewAngle(materialViewAngle)
	}
	if materialBackdrop != "" {
		if err := image.ValidateImagePath(materialBackdrop); err != nil {
			return glass.Context{}, fmt.Errorf("invalid backdrop: %w", err)
		}
		if w, h, err := image.GetImageDimensions(materialBackdrop); err == nil {
			logger.Debug("backdrop image", "path", materialBackdrop, "width", w, "height", h)
		}
		img, err := image.NewFileLoader().Load(materialBackdrop)
		if err != nil {
			return glass.Context{}, fmt.Errorf("failed to load backdrop: %w", err)
		}
		bg := image.DominantColour(img)
		logger.Debug("backdrop sampled", "path", materialBackdrop, "colour", bg.Hex())
		ctx = ctx.WithBackground(bg)
	}
	return ctx, nil
}

// runMaterial executes the material command.
func runMaterial(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	preset, err := presetMaterial(name)
	if err != nil {
		return err
	}
	m, err := buildMaterial(preset)
	if err != nil {
		return fmt.Errorf("invalid material: %w", err)
	}
	ctx, err := buildContext()
	if err != nil {
		return err
	}

	ev := glass.Evaluate(m, ctx)

	switch materialFormat {
	case "json":
		out, err := json.MarshalIndent(ev, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode evaluation: %w", err)
		}
		cmd.Println(string(out))
		return nil
	case "table":
		// Rendered below.
	default:
		return fmt.Errorf("unknown format: %s (want table or json)", materialFormat)
	}

	if s := swatch(ctx.Background); s != "" {
		cmd.Println(s + "backdrop " + ctx.Background.Hex())
	}

	table := NewTable([]string{"Property", "Value"})
	table.AddRow([]string{"Opacity", fmt.Sprintf("%.4f", ev.Opacity)})
	table.AddRow([]string{"Fresnel (normal)", fmt.Sprintf("%.4f", ev.FresnelNormal)})
	table.AddRow([]string{"Fresnel (view)", fmt.Sprintf("%.4f", ev.FresnelEdge)})
	table.AddRow([]string{"Roughness", fmt.Sprintf("%.2f", ev.Roughness)})
	table.AddRow([]string{"Scatter radius", fmt.Sprintf("%.3f mm", ev.ScatterRadiusMM)})
	table.AddRow([]string{"Specular intensity", fmt.Sprintf("%.4f", ev.SpecularIntensity)})
	table.AddRow([]string{"Shininess", fmt.Sprintf("%.1f", ev.Shininess)})
	table.AddRow([]string{"Transmittance RGB", fmt.Sprintf("%.4f / %.4f / %.4f",
		ev.Transmittance[0], ev.Transmittance[1], ev.Transmittance[2])})
	table.AddRow([]string{"Absorption RGB", fmt.Sprintf("%.4f / %.4f / %.4f mm^-1",
		ev.Absorption[0], ev.Absorption[1], ev.Absorption[2])})
	table.AddRow([]string{"Scatter RGB", fmt.Sprintf("%.4f / %.4f / %.4f mm^-1",
		ev.Scatter[0], ev.Scatter[1], ev.Scatter[2])})
	table.AddRow([]string{"Thickness", fmt.Sprintf("%.1f mm", ev.ThicknessMM)})
	cmd.Print(table.Render())

	return nil
}
