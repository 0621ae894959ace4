package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/blockrelay/internal/relay"

	"github.com/urfave/cli/v3"
)

// callCommand calls an argument-less view method of a configured contract.
//
//	blockrelay call --chain origin --contract bridge --method owner
func callCommand(svc relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "call",
		Description: "Calls a read-only method of a contract configured on a chain.",
		Usage:       "Prints each returned value on its own line.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:     "contract",
				Usage:    "Configured contract name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "method",
				Usage:    "Method to call",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			values, err := svc.Call(ctx, c.String("chain"), c.String("contract"), c.String("method"))
			if err != nil {
				return err
			}

			for _, v := range values {
				fmt.Fprintln(c.Root().Writer, v)
			}

			return nil
		},
	}
}

// headCommand prints the head recorded by the head tracker.
//
//	blockrelay head --chain origin
func headCommand(svc relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "head",
		Description: "Prints the last block recorded for a chain.",
		Usage:       "Requires head tracking to be enabled.",
		Flags:       []cli.Flag{chainFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			number, hash, err := svc.Head(ctx, c.String("chain"))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "%d %s\n", number, hash.Hex())
			return nil
		},
	}
}
