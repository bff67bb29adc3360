package commands

import (
	response "bitumen_production/internal/adapter/http/dto/response"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the kettle by polling its status",
	Long: `Poll the kettle status at a fixed interval and print one line per poll.

The interval only affects freshness; the server recomputes elapsed time on
every request.

Examples:
  kettlectl watch
  kettlectl watch --interval 2s`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 10*time.Second, "Polling interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchInterval <= 0 {
		return printError("invalid interval", fmt.Errorf("--interval must be positive, got %s", watchInterval))
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := newClient()
	return pollStatus(ctx, c.Status, watchInterval, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

type statusFunc func(ctx context.Context) (response.ProcessStatusResponse, error)

// pollStatus prints the status immediately and then on every tick until ctx
// is done. A failed poll is reported and the loop keeps going.
func pollStatus(ctx context.Context, fetch statusFunc, interval time.Duration, out, errOut io.Writer) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		st, err := fetch(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			red.Fprintf(errOut, "poll failed: %v\n", err)
		default:
			printStatus(out, st)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
