// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/edulearn/cardvault/cmd/app/commands"
	"github.com/edulearn/cardvault/internal/app"
	"github.com/edulearn/cardvault/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "cardvault",
		Usage:   "Payment card vault application",
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
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
				},
			},
			{
				Name:  "generate-encryption-key",
				Usage: "Generate a new AES-256 card encryption key",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateEncryptionKey(os.Stdout)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
