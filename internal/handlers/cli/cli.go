package cli

import (
	"context"
	"os"

	"github.com/gabapcia/blockrelay/internal/relay"

	"github.com/urfave/cli/v3"
)

// Run builds and executes the blockrelay CLI application.
//
// Commands:
//
//   - `start`: runs the dual-chain observer until interrupted.
//   - `accounts`: lists the accounts of a chain node.
//   - `sign`: signs data with a chain's validator account.
//   - `unlock`: unlocks a chain's validator account.
//   - `call`: calls a read-only method of a configured contract.
//   - `head`: prints the last head recorded for a chain.
func Run(ctx context.Context, svc relay.Service) error {
	return newApp(svc).Run(ctx, os.Args)
}

func newApp(svc relay.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blockrelay",
		Description:           "Observes an origin and an auxiliary chain and relays what it sees.",
		Usage:                 "blockrelay [command] [flags]",
		Commands: []*cli.Command{
			startCommand(svc),
			accountsCommand(svc),
			signCommand(svc),
			unlockCommand(svc),
			callCommand(svc),
			headCommand(svc),
		},
	}
}

func chainFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "chain",
		Usage:    "Chain to act on (origin or auxiliary)",
		Required: true,
	}
}
