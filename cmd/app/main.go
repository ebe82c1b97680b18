// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/sealbox/cmd/app/commands"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "sealbox",
		Usage:   "Encrypted notes service with transparent field encryption",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the API and metrics servers",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-key",
				Usage: "Provision the data key ahead of first request traffic",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateKey(ctx)
				},
			},
			{
				Name:  "keeper-key",
				Usage: "Generate a random 256-bit key as a base64key:// URI for the local keeper",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunKeeperKey(commands.DefaultIO())
				},
			},
			{
				Name:  "hash-api-key",
				Usage: "Print the Argon2id hash of an API key for API_KEY_HASH",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "key",
						Aliases: []string{"k"},
						Value:   "",
						Usage:   "API key to hash (omit to generate a random key)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunHashAPIKey(commands.DefaultIO(), cmd.String("key"))
				},
			},
			{
				Name:  "seal",
				Usage: "Encrypt a value with the service data key and print the stored form",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Plaintext value to seal",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunSeal(ctx, commands.DefaultIO(), cmd.String("value"))
				},
			},
			{
				Name:  "open",
				Usage: "Decrypt a stored value and print the plaintext",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Required: true,
						Usage:    "Stored value in iv:ciphertext form",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunOpen(ctx, commands.DefaultIO(), cmd.String("value"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
