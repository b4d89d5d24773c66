package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/yearpick/internal/cli"
	"github.com/thenoetrevino/yearpick/internal/cli/handler"
	"github.com/thenoetrevino/yearpick/internal/config"
	"github.com/thenoetrevino/yearpick/internal/config/colors"
	"github.com/thenoetrevino/yearpick/internal/logging"
	"github.com/thenoetrevino/yearpick/internal/tui"
	"github.com/thenoetrevino/yearpick/internal/tui/core"
	"github.com/thenoetrevino/yearpick/internal/tui/theme"
)

// app holds what the commands share for one invocation
type app struct {
	logs io.Closer

	// runProgram runs the picker; replaced in tests
	runProgram func(ctx context.Context, model *core.App) error
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes args against a fresh command tree
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{runProgram: runProgram}
	defer a.close()
	return a.run(ctx, args, stdout, stderr)
}

func (a *app) run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	executed, err := root.ExecuteContextC(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	code := cli.ExitCode(err)
	slog.Error("command failed", "error", err, "code", code)
	if executed == nil {
		executed = root
	}
	if fmtErr := handler.Formatter(executed).Error(cli.ErrorCode(code), err.Error()); fmtErr != nil {
		fmt.Fprintf(stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return code
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "yearpick",
		Short: "yearpick - pick a year in the terminal",
		Long: `yearpick opens a scrollable list of years and prints the picked date
(YYYY-MM-DD) on stdout. Quitting prints nothing.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setupLogging,
		RunE:              handler.SimpleCommand(handler.HandlerFunc(a.runPicker)),
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default $XDG_CONFIG_HOME/yearpick/config.yaml)")
	flags.String("min", "", "first year offered (default from config, 1900)")
	flags.String("max", "", "last year offered (default from config, 2100)")
	flags.Bool("json", false, "print results as JSON")
	flags.Bool("debug", false, "log at debug level")

	root.Flags().String("date", "", "initial date, YYYY-MM-DD")
	root.Flags().String("theme", "", "color preset: "+strings.Join(colors.PresetNames(), ", "))

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	root.AddCommand(newYearsCmd())
	return root
}

func (a *app) setupLogging(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}

	closer, err := logging.Init(level)
	if err != nil {
		// Run without a log file.
		logging.Discard()
		return nil
	}
	a.logs = closer
	slog.Debug("starting", "command", cmd.CommandPath())
	return nil
}

func (a *app) close() {
	if a.logs != nil {
		a.logs.Close()
		a.logs = nil
	}
}

// loadConfig reads --config, or the default location when it is unset
func loadConfig(args *handler.Arguments) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := args.GetString("config", ""); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.DataError(err)
	}
	return cfg, nil
}

// pickerOptions turns --min, --max and --date into picker options
func pickerOptions(args *handler.Arguments) (tui.Options, error) {
	var opts tui.Options
	var err error

	if opts.Min, err = cli.ParseBound("min", args.GetString("min", "")); err != nil {
		return opts, err
	}
	if opts.Max, err = cli.ParseBound("max", args.GetString("max", "")); err != nil {
		return opts, err
	}
	if opts.Date, err = cli.ParseDate(args.GetString("date", "")); err != nil {
		return opts, err
	}
	return opts, nil
}

func (a *app) runPicker(ctx context.Context, args *handler.Arguments) (any, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, err
	}
	if name := args.GetString("theme", ""); name != "" {
		if err := cfg.UsePreset(name); err != nil {
			return nil, cli.UsageError(err)
		}
	}
	theme.Init(cfg.ColorScheme)

	opts, err := pickerOptions(args)
	if err != nil {
		return nil, err
	}

	model := core.New(cfg, opts)
	if err := a.runProgram(ctx, model); err != nil {
		return nil, fmt.Errorf("failed to run year picker: %w", err)
	}

	date, ok := model.GetModel().Result()
	if !ok {
		slog.Info("quit without picking")
		return nil, nil
	}
	return cli.NewDateResult(date), nil
}

// runProgram draws the picker on stderr so stdout only carries the result
func runProgram(ctx context.Context, model *core.App) error {
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	_, err := p.Run()
	return err
}
