package commands

import (
	response "bitumen_production/internal/adapter/http/dto/response"

	"github.com/spf13/cobra"
)

var stockCmd = &cobra.Command{
	Use:   "stock [category]",
	Short: "Show material stock, all categories or one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		if len(args) == 1 {
			s, err := c.GetStock(cmd.Context(), args[0])
			if err != nil {
				return printError("failed to read stock", err)
			}
			printStock(cmd.OutOrStdout(), []response.StockResponse{s})
			return nil
		}
		list, err := c.ListStock(cmd.Context())
		if err != nil {
			return printError("failed to read stock", err)
		}
		printStock(cmd.OutOrStdout(), list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stockCmd)
}
