// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/vidfetch/cmd/app/commands"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "vidfetch",
		Usage:   "Token-gated video download API",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "sweep",
				Usage: "Remove downloaded files older than the retention age",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-age-hours",
						Aliases: []string{"a"},
						Value:   0,
						Usage:   "Override the configured retention age in hours (0 uses the configured value)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunSweep(ctx, int(cmd.Int("max-age-hours")))
				},
			},
			{
				Name:  "generate-secret",
				Usage: "Generate a random signing secret for SECRET_KEY",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateSecret()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
