// Package cli provides the command-line interface for Lustre.
package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/lustre/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Global output flags
	flagVerbose bool
	flagQuiet   bool

	// logger is the shared command logger, configured from the global
	// flags before any command runs.
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "lustre",
		Short: "A deterministic colour and glass material engine",
		Long: `Lustre converts colours between sRGB, OKLCH, CAM16 and the HCT tone space,
measures WCAG and APCA contrast, and evaluates physically grounded glass
materials into renderable surface properties.

The same inputs always produce the same outputs: every conversion, contrast
metric and material evaluation is deterministic.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
			cmd.Flags().Visit(func(f *pflag.Flag) {
				logger.Debug("flag set", "name", f.Name, "value", f.Value.String())
			})
		},
	}
)

// newLogger builds the command logger from the global flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	output := io.Writer(os.Stderr)
	switch {
	case flagQuiet:
		level = hclog.Error
	case flagVerbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "lustre",
		Output: output,
		Level:  level,
	})
}

// NewRootCmd returns the fully wired root command. Used by main and by
// command tests that execute the CLI in-process.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(materialCmd)
	rootCmd.AddCommand(renderCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
