package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/blockrelay/internal/relay"

	"github.com/urfave/cli/v3"
)

// startCommand runs the observer until SIGINT or SIGTERM.
//
//	blockrelay start
func startCommand(svc relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts observing both chains and notifying their reactors.",
		Usage:       "Runs the relay. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			if err := svc.Start(ctx); err != nil {
				return err
			}
			defer svc.Close()

			select {
			case <-quit:
			case <-ctx.Done():
			}

			return nil
		},
	}
}
