package cmd

import (
	"context"
	"os"

	"github.com/bernd/poddash/config"
	"github.com/bernd/poddash/fileserver"
	"github.com/bernd/poddash/tui"
	"github.com/urfave/cli/v3"
)

func ServeFilesCommand() *cli.Command {
	defaults := config.Default().FileServer
	return &cli.Command{
		Name:     fileserver.ServeCommand,
		Usage:    "Serve a directory over HTTP (started by the dashboard on pods without GPUs)",
		Category: "Internal",
		Hidden:   true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "Directory to serve",
				Value: defaults.Dir,
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "TCP port to listen on",
				Value: defaults.Port,
			},
			&cli.FloatFlag{
				Name:  "rate",
				Usage: "Requests per second",
				Value: defaults.Rate,
			},
			&cli.IntFlag{
				Name:  "burst",
				Usage: "Request burst size",
				Value: defaults.Burst,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.FileServerConfig{
				Dir:   cmd.String("dir"),
				Port:  cmd.Int("port"),
				Rate:  cmd.Float("rate"),
				Burst: cmd.Int("burst"),
			}
			srv, err := fileserver.NewServer(cfg, tui.NewStatusWriter(os.Stdout))
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
}
