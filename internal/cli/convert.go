package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/lustre/internal/colour"
	"github.com/spf13/cobra"
)

var (
	// Convert command flags
	convertFormat            string
	convertAdaptingLuminance float64
	convertBackgroundLstar   float64
	convertSurround          float64
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour between colour spaces",
	Long: `Convert a hex colour to its OKLCH, HCT and CAM16 representations.

The CAM16 appearance correlates depend on viewing conditions; the defaults
match the standard environment (D65 white, ~11.7 cd/m2 adapting luminance,
an L*=50 grey background and an average surround) and can be overridden
with flags.

Examples:
  # Show all representations of a colour
  lustre convert '#ff6f61'

  # Output as JSON
  lustre convert --format json '#1a2b3c'

  # Appearance under a dim surround
  lustre convert --surround 0.5 --adapting-luminance 4 '#ff6f61'`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "table", "output format (table, json)")
	convertCmd.Flags().Float64Var(&convertAdaptingLuminance, "adapting-luminance", defaultViewing().AdaptingLuminance, "adapting luminance in cd/m2")
	convertCmd.Flags().Float64Var(&convertBackgroundLstar, "background-lstar", defaultViewing().BackgroundLstar, "background lightness L* (0-100)")
	convertCmd.Flags().Float64Var(&convertSurround, "surround", defaultViewing().Surround, "surround factor (0 dark, 1 dim, 2 average)")
}

func defaultViewing() colour.ViewingConditions {
	return colour.StandardViewing()
}

// conversionReport collects every representation of a converted colour.
type conversionReport struct {
	Hex   string  `json:"hex"`
	RGB   [3]int  `json:"rgb"`
	OKLCH string  `json:"oklch"`
	HCT   hctJSON `json:"hct"`
	CAM16 camJSON `json:"cam16"`
}

type hctJSON struct {
	Hue    float64 `json:"hue"`
	Chroma float64 `json:"chroma"`
	Tone   float64 `json:"tone"`
}

type camJSON struct {
	Lightness     float64 `json:"lightness"`
	Chroma        float64 `json:"chroma"`
	Hue           float64 `json:"hue"`
	Brightness    float64 `json:"brightness"`
	Colourfulness float64 `json:"colourfulness"`
	Saturation    float64 `json:"saturation"`
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	c, err := colour.FromHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	vc := colour.NewViewingConditions(convertAdaptingLuminance, convertBackgroundLstar, convertSurround)
	logger.Debug("viewing conditions derived",
		"adapting_luminance", vc.AdaptingLuminance,
		"background_lstar", vc.BackgroundLstar,
		"surround", vc.Surround)

	o := colour.ToOKLCH(c)
	h := colour.ToHCT(c)
	cam := colour.ToCAM(c, vc)

	report := conversionReport{
		Hex:   c.Hex(),
		RGB:   [3]int{int(c.R), int(c.G), int(c.B)},
		OKLCH: o.String(),
		HCT:   hctJSON{Hue: h.Hue, Chroma: h.Chroma, Tone: h.Tone},
		CAM16: camJSON{
			Lightness:     cam.J,
			Chroma:        cam.C,
			Hue:           cam.H,
			Brightness:    cam.Q,
			Colourfulness: cam.M,
			Saturation:    cam.S,
		},
	}

	switch convertFormat {
	case "json":
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		cmd.Println(string(out))
		return nil
	case "table":
		// Rendered below.
	default:
		return fmt.Errorf("unknown format: %s (want table or json)", convertFormat)
	}

	if s := swatch(c); s != "" {
		cmd.Println(s + c.Hex())
	}

	table := NewTable([]string{"Space", "Value"})
	table.AddRow([]string{"Hex", report.Hex})
	table.AddRow([]string{"RGB", c.String()})
	table.AddRow([]string{"OKLCH", report.OKLCH})
	table.AddRow([]string{"HCT", fmt.Sprintf("hct(%.2f %.2f %.2f)", h.Hue, h.Chroma, h.Tone)})
	table.AddRow([]string{"CAM16 J", fmt.Sprintf("%.3f", cam.J)})
	table.AddRow([]string{"CAM16 C", fmt.Sprintf("%.3f", cam.C)})
	table.AddRow([]string{"CAM16 h", fmt.Sprintf("%.2f", cam.H)})
	table.AddRow([]string{"CAM16 Q", fmt.Sprintf("%.3f", cam.Q)})
	table.AddRow([]string{"CAM16 M", fmt.Sprintf("%.3f", cam.M)})
	table.AddRow([]string{"CAM16 s", fmt.Sprintf("%.3f", cam.S)})
	cmd.Print(table.Render())

	return nil
}
