package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swscan",
		Short: "Inspect the Apple software update catalog",
		Long: `Swscan downloads the Apple software update catalog and reports
BootCamp driver bundles and full macOS installers.

For every product it prints the identifier, the post date, the supported
models (BootCamp) or the system, version and build (installers), and the
package download URLs.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, allSections)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewBootCampCmd())
	rootCmd.AddCommand(NewInstallersCmd())

	return rootCmd
}
