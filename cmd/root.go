package cmd

import (
	"context"
	"fmt"

	"github.com/bernd/poddash/config"
	"github.com/urfave/cli/v3"
)

func RootCommand() *cli.Command {
	return &cli.Command{
		Name:            config.AppName,
		Usage:           "Show pod details and set up SSH access in the terminal",
		HideHelpCommand: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unexpected argument %q", cmd.Args().First())
			}
			return RunDashboard(ctx)
		},
		Commands: []*cli.Command{
			ServeFilesCommand(),
		},
	}
}
