package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/yearpick/internal/cli"
	"github.com/thenoetrevino/yearpick/internal/cli/handler"
	"github.com/thenoetrevino/yearpick/internal/models"
)

func newYearsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "years",
		Short: "Print the years the picker offers",
		Long: `Print the year sequence for the configured range, one year per line.
--min and --max override the config file.`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runYears)),
	}
	cmd.Flags().Bool("quiet", false, "print only the number of years")
	return cmd
}

func runYears(_ context.Context, args *handler.Arguments) (any, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, err
	}

	lo, hi := cfg.Years.Min, cfg.Years.Max
	if v, err := cli.ParseBound("min", args.GetString("min", "")); err != nil {
		return nil, err
	} else if v != nil {
		lo = v
	}
	if v, err := cli.ParseBound("max", args.GetString("max", "")); err != nil {
		return nil, err
	} else if v != nil {
		hi = v
	}

	items, ok := models.ComputeYearsFrom(lo, hi)
	if !ok {
		return nil, cli.DataError(fmt.Errorf("years %v..%v: %w", lo, hi, models.ErrInvalidBound))
	}
	return cli.NewYearsResult(items), nil
}
