package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/store/cmd/app/commands"
	"github.com/allisson/store/internal/app"
	"github.com/allisson/store/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Register a new store user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Login name, also the owner name of published products",
				},
				&cli.StringFlag{
					Name:     "pseudonym",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Unique display name",
				},
				&cli.StringFlag{
					Name:  "password",
					Usage: "Password (omit to be prompted)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					cmd.String("username"),
					cmd.String("pseudonym"),
					cmd.String("password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "encrypt-token-secret",
			Usage: "Encrypt the token signing secret with a KMS key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "secret",
					Usage: "Secret to encrypt (omit to generate a random 32-byte secret)",
				},
				&cli.StringFlag{
					Name:     "kms-key-uri",
					Required: true,
					Usage:    "KMS key URI (e.g., base64key://..., awskms:///alias/..., hashivault://...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunEncryptTokenSecret(
					ctx,
					container.KeeperService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("secret"),
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
