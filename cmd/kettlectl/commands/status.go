package commands

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the kettle state once",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newClient().Status(cmd.Context())
		if err != nil {
			return printError("failed to read kettle status", err)
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
