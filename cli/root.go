package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	jsonOutput bool
)

// rootCmd is the root command for frontdesk.
var rootCmd = &cobra.Command{
	Use:     "frontdesk",
	Version: "dev",
	Short:   "Hotel front-desk console",
	Long: `frontdesk serves the front-desk API: monthly occupancy, stay conflict checks,
billing quotes and guarded room status changes against the booking directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing the .env file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(serveCmd, quoteCmd, conflictsCmd, warmCmd)
}
