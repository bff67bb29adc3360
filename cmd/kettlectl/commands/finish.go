package commands

import (
	request "bitumen_production/internal/adapter/http/dto/request"
	"fmt"

	"github.com/spf13/cobra"
)

var finishFlags struct {
	batchID              string
	actual, sale, filler string
}

var finishCmd = &cobra.Command{
	Use:     "finish",
	Short:   "Finish the boiling batch and split its output",
	Example: `  kettlectl finish --batch <id> --actual 14500 --sale 10000 --filler 4500`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := request.FinishConversionRequest{BatchID: finishFlags.batchID}
		if err := parseDecimals(map[string]decimalFlag{
			"actual": {finishFlags.actual, &in.ActualOutputKg},
			"sale":   {finishFlags.sale, &in.ForSaleKg},
			"filler": {finishFlags.filler, &in.ForFillerKg},
		}); err != nil {
			return printError("invalid finish inputs", err)
		}

		out, err := newClient().Finish(cmd.Context(), in)
		if err != nil {
			return printError("failed to finish batch", err)
		}
		w := cmd.OutOrStdout()
		green.Fprintf(w, "✓ batch %s finished, unit cost %s\n", out.BatchID, formatNumber(out.UnitCost))
		fmt.Fprintf(w, "  credited bn5=%s bn5_blend=%s\n", formatNumber(out.CreditedSale), formatNumber(out.CreditedFiller))
		if out.UnallocatedKg > 0 {
			yellow.Fprintf(w, "  unallocated %s kg\n", formatNumber(out.UnallocatedKg))
		}
		return nil
	},
}

func init() {
	f := finishCmd.Flags()
	f.StringVar(&finishFlags.batchID, "batch", "", "Batch id returned by start")
	f.StringVar(&finishFlags.actual, "actual", "", "Weighed output (kg)")
	f.StringVar(&finishFlags.sale, "sale", "0", "Output kept for sale (kg)")
	f.StringVar(&finishFlags.filler, "filler", "0", "Output sent to blending (kg)")
	_ = finishCmd.MarkFlagRequired("batch")
	_ = finishCmd.MarkFlagRequired("actual")
	rootCmd.AddCommand(finishCmd)
}
