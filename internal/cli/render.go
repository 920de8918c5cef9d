package cli

import (
	"fmt"

	"github.com/jmylchreest/lustre/internal/colour"
	"github.com/jmylchreest/lustre/internal/glass"
	"github.com/jmylchreest/lustre/internal/image"
	"github.com/jmylchreest/lustre/internal/render"
	"github.com/spf13/cobra"
)

var (
	// Render command flags
	renderWidth    int
	renderHeight   int
	renderDPR      float64
	renderBackdrop string
	renderContext  string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <preset>...",
	Short: "Render materials to CSS-like style declarations",
	Long: `Evaluate one or more material presets and print the CSS-like style
declaration for each: backdrop blur, composited background colour and a
Fresnel-driven border.

Multiple presets are evaluated as a batch under the same context, so the
declarations are directly comparable.

Examples:
  # One pane
  lustre render frosted

  # Compare all presets on a HiDPI display
  lustre render --dpr 2 clear regular thick frosted

  # Style a pane over a wallpaper
  lustre render frosted --backdrop wallpaper.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "viewport width in px")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "viewport height in px")
	renderCmd.Flags().Float64Var(&renderDPR, "dpr", 0, "device pixel ratio")
	renderCmd.Flags().StringVar(&renderBackdrop, "backdrop", "", "backdrop as a hex colour or an image file to sample")
	renderCmd.Flags().StringVar(&renderContext, "context", "default", "evaluation context (default, dark, oblique, dim)")
}

// resolveBackdrop turns the --backdrop flag into a colour. A value with a
// supported image extension is validated, loaded and sampled; anything
// else must parse as a hex colour.
func resolveBackdrop(value string) (colour.Colour, error) {
	if image.IsImageFile(value) {
		if err := image.ValidateImagePath(value); err != nil {
			return colour.Colour{}, fmt.Errorf("invalid backdrop: %w", err)
		}
		img, err := image.NewFileLoader().Load(value)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("failed to load backdrop: %w", err)
		}
		return image.DominantColour(img), nil
	}
	c, err := colour.FromHex(value)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("backdrop is neither a hex colour nor a supported image file: %w", err)
	}
	return c, nil
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string) error {
	ctx, err := namedContext(renderContext)
	if err != nil {
		return err
	}

	rctx := render.DefaultRenderContext()
	if renderWidth > 0 {
		rctx.ViewportWidth = renderWidth
	}
	if renderHeight > 0 {
		rctx.ViewportHeight = renderHeight
	}
	if renderDPR > 0 {
		rctx.DevicePixelRatio = renderDPR
	}
	if renderBackdrop != "" {
		bg, err := resolveBackdrop(renderBackdrop)
		if err != nil {
			return err
		}
		logger.Debug("backdrop resolved", "colour", bg.Hex())
		ctx = ctx.WithBackground(bg)
		rctx.Backdrop = bg
	}

	materials := make([]glass.Material, 0, len(args))
	for _, name := range args {
		m, err := presetMaterial(name)
		if err != nil {
			return err
		}
		materials = append(materials, m)
	}

	evs := glass.NewBatchEvaluator(ctx).EvaluateFull(materials)
	styles := render.StyleBatch(evs, rctx)
	for i, style := range styles {
		cmd.Printf("/* %s */\n%s\n", args[i], style)
	}

	return nil
}
