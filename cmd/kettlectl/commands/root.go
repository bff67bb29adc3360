package commands

import (
	"bitumen_production/internal/client"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	apiURL     string
	apiTimeout time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kettlectl",
	Short: "kettlectl - operator console for the bitumen kettle",
	Long: `kettlectl talks to the production API to start and finish BN-3 -> BN-5
conversion batches, follow the kettle while it boils and inspect material stock.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Cobra's own error printing is silenced;
// commands print colored errors themselves.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

func init() {
	defaultURL := os.Getenv("KETTLE_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "Production API base URL (env KETTLE_API_URL)")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 10*time.Second, "HTTP timeout per request")
}

func newClient() *client.Client {
	return client.New(apiURL, apiTimeout)
}
