package commands

import (
	response "bitumen_production/internal/adapter/http/dto/response"
	"bitumen_production/internal/client"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// printStatus writes one status line: idle in yellow, boiling in green with
// elapsed time and the projected unit cost.
func printStatus(w io.Writer, st response.ProcessStatusResponse) {
	if st.State != "boiling" {
		yellow.Fprintf(w, "kettle idle")
		fmt.Fprintf(w, "  (observed %s)\n", st.ObservedAt.Local().Format(time.TimeOnly))
		return
	}
	elapsed := time.Duration(st.ElapsedSeconds) * time.Second
	green.Fprintf(w, "boiling")
	fmt.Fprintf(w, " batch=%s elapsed=%s projected_kg=%s unit_cost=%s\n",
		st.BatchID, formatElapsed(elapsed), formatNumber(st.ProjectedOutputKg), formatNumber(st.ProjectedUnitCost))
}

func printStock(w io.Writer, list []response.StockResponse) {
	cyan.Fprintf(w, "%-12s %14s %12s\n", "CATEGORY", "ON HAND", "UNIT PRICE")
	for _, s := range list {
		fmt.Fprintf(w, "%-12s %14s %12s\n", s.Category, formatNumber(s.QuantityOnHand), formatNumber(s.UnitPrice))
	}
}

// printError prints a colored error to stderr and returns it wrapped for cobra.
func printError(title string, err error) error {
	red.Fprintf(os.Stderr, "✗ %s\n", title)
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Body.Message != "" {
		fmt.Fprintf(os.Stderr, "  %s (%s)\n", apiErr.Body.Message, apiErr.Body.Code)
	} else {
		fmt.Fprintf(os.Stderr, "  %v\n", err)
	}
	return fmt.Errorf("%s: %w", title, err)
}

// formatElapsed renders a duration as HH:MM:SS.
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}
