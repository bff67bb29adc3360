package commands

import (
	request "bitumen_production/internal/adapter/http/dto/request"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var startFlags struct {
	raw, waste, gas, kwh, labor, extra string
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a conversion batch",
	Example: `  kettlectl start --raw 15000 --waste 500 --gas 800 --kwh 500 --labor 70 --extra 713545`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := parseStartInputs()
		if err != nil {
			return printError("invalid batch inputs", err)
		}
		out, err := newClient().Start(cmd.Context(), in)
		if err != nil {
			return printError("failed to start batch", err)
		}
		green.Fprintf(cmd.OutOrStdout(), "✓ batch %s boiling, projected unit cost %s\n", out.BatchID, formatNumber(out.ProjectedUnitCost))
		return nil
	},
}

func init() {
	f := startCmd.Flags()
	f.StringVar(&startFlags.raw, "raw", "", "BN-3 loaded into the kettle (kg)")
	f.StringVar(&startFlags.waste, "waste", "0", "Expected waste (kg)")
	f.StringVar(&startFlags.gas, "gas", "0", "Gas volume")
	f.StringVar(&startFlags.kwh, "kwh", "0", "Electricity (kWh)")
	f.StringVar(&startFlags.labor, "labor", "0", "Labor rate per output kg")
	f.StringVar(&startFlags.extra, "extra", "0", "Flat extra cost")
	_ = startCmd.MarkFlagRequired("raw")
	rootCmd.AddCommand(startCmd)
}

func parseStartInputs() (request.ConversionInputsRequest, error) {
	var in request.ConversionInputsRequest
	err := parseDecimals(map[string]decimalFlag{
		"raw":   {startFlags.raw, &in.RawAmountKg},
		"waste": {startFlags.waste, &in.WasteAmountKg},
		"gas":   {startFlags.gas, &in.GasVolume},
		"kwh":   {startFlags.kwh, &in.ElectricityKwh},
		"labor": {startFlags.labor, &in.LaborRatePerKg},
		"extra": {startFlags.extra, &in.ExtraCost},
	})
	return in, err
}

type decimalFlag struct {
	raw string
	dst *decimal.Decimal
}

func parseDecimals(flags map[string]decimalFlag) error {
	for name, f := range flags {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("--%s: %q is not a number", name, f.raw)
		}
		*f.dst = d
	}
	return nil
}
