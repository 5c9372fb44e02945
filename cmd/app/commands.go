package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardcheck/cmd/app/commands"
	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getCardCommands()...)
	return cmds
}

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   commands.FormatText,
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getCardCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "validate-number",
			Usage:     "Validate a card number and detect its network",
			UsageText: "app validate-number [number...] (reads one line from stdin without arguments)",
			ArgsUsage: "[number...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				stdio := commands.DefaultIO()
				number, err := commands.ReadNumber(cmd.Args().Slice(), stdio.Reader)
				if err != nil {
					return err
				}
				return commands.WithCardUseCase(ctx, func(logger *slog.Logger, useCase cardUseCase.CardUseCase) error {
					return commands.RunValidateNumber(
						ctx,
						useCase,
						logger,
						stdio.Writer,
						number,
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "validate-cvc",
			Usage:     "Validate a card verification code",
			ArgsUsage: "<cvc>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "network",
					Aliases: []string{"n"},
					Usage:   "Card network (omit to accept 3 or 4 digits)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.WithCardUseCase(ctx, func(logger *slog.Logger, useCase cardUseCase.CardUseCase) error {
					return commands.RunValidateCVC(
						ctx,
						useCase,
						logger,
						commands.DefaultIO().Writer,
						cmd.Args().First(),
						cmd.String("network"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "validate-expiry",
			Usage: "Validate a card expiry date",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "year",
					Aliases:  []string{"y"},
					Required: true,
					Usage:    "Four-digit expiry year",
				},
				&cli.IntFlag{
					Name:    "month",
					Aliases: []string{"m"},
					Usage:   "Expiry month 1-12 (omit to check the year only)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.WithCardUseCase(ctx, func(logger *slog.Logger, useCase cardUseCase.CardUseCase) error {
					return commands.RunValidateExpiry(
						ctx,
						useCase,
						logger,
						commands.DefaultIO().Writer,
						cmd.Int("year"),
						cmd.Int("month"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "validate",
			Usage: "Validate number, CVC and expiry of a card together",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "number", Required: true, Usage: "Card number"},
				&cli.StringFlag{Name: "cvc", Usage: "Card verification code"},
				&cli.IntFlag{Name: "year", Usage: "Expiry year"},
				&cli.IntFlag{Name: "month", Usage: "Expiry month"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.WithCardUseCase(ctx, func(logger *slog.Logger, useCase cardUseCase.CardUseCase) error {
					return commands.RunValidateCard(
						ctx,
						useCase,
						logger,
						commands.DefaultIO().Writer,
						&cardDomain.CardInput{
							Number: cmd.String("number"),
							CVC:    cmd.String("cvc"),
							Year:   cmd.Int("year"),
							Month:  cmd.Int("month"),
						},
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "list-networks",
			Usage: "List supported card networks in match order",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.WithCardUseCase(ctx, func(logger *slog.Logger, useCase cardUseCase.CardUseCase) error {
					return commands.RunListNetworks(ctx, useCase, commands.DefaultIO().Writer, cmd.String("format"))
				})
			},
		},
		{
			Name:  "generate-number",
			Usage: "Generate sample card numbers for testing checkout forms",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "network",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Card network, see list-networks",
				},
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Usage:   "Number length (omit for the network default)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "How many numbers to generate",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.WithCardUseCase(ctx, func(logger *slog.Logger, useCase cardUseCase.CardUseCase) error {
					return commands.RunGenerateNumbers(
						ctx,
						useCase,
						logger,
						commands.DefaultIO().Writer,
						cmd.String("network"),
						cmd.Int("length"),
						cmd.Int("count"),
						cmd.String("format"),
					)
				})
			},
		},
	}
}
