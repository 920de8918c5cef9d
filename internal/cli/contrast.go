package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/lustre/internal/colour"
	"github.com/jmylchreest/lustre/internal/contrast"
	"github.com/spf13/cobra"
)

var (
	// Contrast command flags
	contrastFormat string
)

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Measure contrast between two colours",
	Long: `Measure the contrast between a foreground and a background colour
using both the WCAG 2.x ratio and the APCA lightness contrast (Lc).

The WCAG ratio is symmetric in its arguments; APCA is polarity aware and
reports dark-on-light pairs as positive and light-on-dark pairs as
negative.

Examples:
  # Black text on white
  lustre contrast '#000000' '#ffffff'

  # JSON report for tooling
  lustre contrast --format json '#767676' '#ffffff'`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringVarP(&contrastFormat, "format", "f", "table", "output format (table, json)")
}

// contrastReport is the JSON shape of a contrast measurement.
type contrastReport struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	WCAGRatio  float64 `json:"wcag_ratio"`
	APCA       float64 `json:"apca_lc"`
	Polarity   string  `json:"apca_polarity"`
	AANormal   bool    `json:"aa_normal"`
	AALarge    bool    `json:"aa_large"`
	AAANormal  bool    `json:"aaa_normal"`
	AAALarge   bool    `json:"aaa_large"`
}

// polarityName renders an APCA polarity for humans.
func polarityName(p int) string {
	switch p {
	case contrast.PolarityDarkOnLight:
		return "dark-on-light"
	case contrast.PolarityLightOnDark:
		return "light-on-dark"
	default:
		return "none"
	}
}

// passMark renders a boolean gate as a pass/fail marker.
func passMark(ok bool) string {
	if ok {
		return "pass"
	}
	return "FAIL"
}

// runContrast executes the contrast command.
func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := colour.FromHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid foreground: %w", err)
	}
	bg, err := colour.FromHex(args[1])
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}

	ratio := contrast.WCAGRatio(fg, bg)
	apca := contrast.APCAEvaluate(fg, bg)
	logger.Debug("contrast measured", "wcag", ratio, "apca", apca.Value)

	report := contrastReport{
		Foreground: fg.Hex(),
		Background: bg.Hex(),
		WCAGRatio:  ratio,
		APCA:       apca.Value,
		Polarity:   polarityName(apca.Polarity),
		AANormal:   contrast.WCAGPasses(ratio, contrast.LevelAA, false),
		AALarge:    contrast.WCAGPasses(ratio, contrast.LevelAA, true),
		AAANormal:  contrast.WCAGPasses(ratio, contrast.LevelAAA, false),
		AAALarge:   contrast.WCAGPasses(ratio, contrast.LevelAAA, true),
	}

	switch contrastFormat {
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
		return fmt.Errorf("unknown format: %s (want table or json)", contrastFormat)
	}

	if stdoutIsTerminal() {
		cmd.Println(swatchWithText(bg, fg.Hex()) + "  " + fg.Hex() + " on " + bg.Hex())
	}

	table := NewTable([]string{"Metric", "Value", "Verdict"})
	table.AddRow([]string{"WCAG ratio", fmt.Sprintf("%.2f:1", ratio), ""})
	table.AddRow([]string{"  AA normal text", "4.50:1 required", passMark(report.AANormal)})
	table.AddRow([]string{"  AA large text", "3.00:1 required", passMark(report.AALarge)})
	table.AddRow([]string{"  AAA normal text", "7.00:1 required", passMark(report.AAANormal)})
	table.AddRow([]string{"  AAA large text", "4.50:1 required", passMark(report.AAALarge)})
	table.AddRow([]string{"APCA Lc", fmt.Sprintf("%.2f", apca.Value), polarityName(apca.Polarity)})
	cmd.Print(table.Render())

	return nil
}
