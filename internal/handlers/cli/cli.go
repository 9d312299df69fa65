package cli

import (
	"context"
	"os"

	"github.com/gabapcia/tokenwatch/internal/blockproc"
	"github.com/gabapcia/tokenwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the tokenwatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Starts the full wallet activity pipeline.
//   - `watch`: Registers a wallet for monitoring.
//   - `unwatch`: Unregisters a wallet from monitoring.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wr: The walletregistry service implementation used by wallet commands.
//   - bp: The blockproc service implementation used by the pipeline command.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, wr walletregistry.Service, bp blockproc.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "tokenwatch",
		Description:           "Command-line interface for managing and running the Tokenwatch activity pipeline.",
		Usage:                 "tokenwatch [command] [flags]",
		Commands: []*cli.Command{
			startPipelineCommand(bp),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
		},
	}

	return app.Run(ctx, os.Args)
}
