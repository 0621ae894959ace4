package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/blockrelay/internal/relay"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v3"
)

// accountsCommand lists the accounts known to a chain node.
//
//	blockrelay accounts --chain origin
func accountsCommand(svc relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "accounts",
		Description: "Lists the accounts managed by a chain node.",
		Usage:       "Prints one account address per line.",
		Flags:       []cli.Flag{chainFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			accounts, err := svc.Accounts(ctx, c.String("chain"))
			if err != nil {
				return err
			}

			for _, account := range accounts {
				fmt.Fprintln(c.Root().Writer, account.Hex())
			}

			return nil
		},
	}
}

// signCommand signs hex encoded data with the validator account.
//
//	blockrelay sign --chain origin --data 0xdeadbeef
func signCommand(svc relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "sign",
		Description: "Signs data with the validator account of a chain.",
		Usage:       "Unlocks the validator account and prints the signature.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:     "data",
				Usage:    "0x-prefixed hex data to sign",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := hexutil.Decode(c.String("data"))
			if err != nil {
				return fmt.Errorf("decoding data: %w", err)
			}

			sig, err := svc.Sign(ctx, c.String("chain"), data)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Root().Writer, sig.String())
			return nil
		},
	}
}

// unlockCommand unlocks the validator account, optionally for a bounded time.
//
//	blockrelay unlock --chain auxiliary --duration 5m
func unlockCommand(svc relay.Service) *cli.Command {
	return &cli.Command{
		Name:        "unlock",
		Description: "Unlocks the validator account of a chain.",
		Usage:       "Without --duration the node's default unlock period applies.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.DurationFlag{
				Name:  "duration",
				Usage: "How long the account stays unlocked, rounded down to seconds",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var duration *uint64
			if c.IsSet("duration") {
				seconds := uint64(c.Duration("duration") / time.Second)
				duration = &seconds
			}

			ok, err := svc.Unlock(ctx, c.String("chain"), duration)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("node refused to unlock the %s validator", c.String("chain"))
			}

			fmt.Fprintln(c.Root().Writer, "unlocked")
			return nil
		},
	}
}
