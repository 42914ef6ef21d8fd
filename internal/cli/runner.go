// Package cli is the tada command surface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage or rejected input.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// exitErr carries a specific exit code out of a command.
type exitErr struct {
	code int
	err  error
}

func (e *exitErr) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit %d", e.code)
	}
	return e.err.Error()
}

func (e *exitErr) Unwrap() error { return e.err }

func usageErr(format string, a ...any) error {
	return &exitErr{code: exitUsage, err: fmt.Errorf(format, a...)}
}

// silentExit ends a command with code after it already told the user why.
func silentExit(code int) error { return &exitErr{code: code} }

// flags are the root flags; they override config file and environment.
type flags struct {
	configPath string
	dataDir    string
	store      string
	theme      string
	locale     string
	verbose    bool
}

// env is what every subcommand runs with once the root has resolved
// configuration.
type env struct {
	cfg     *config.Config
	cfgPath string
	theme  ui.Theme
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// Run executes args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	e := &env{stdout: stdout, stderr: stderr}
	e.theme, _ = ui.ThemeByName("classic")

	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if e.log != nil {
		_ = e.log.Sync()
	}
	if err == nil {
		return exitOK
	}

	var ee *exitErr
	switch {
	case errors.As(err, &ee):
		if ee.err != nil {
			ui.Fail(stderr, e.theme, ee.err.Error())
		}
		return ee.code
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "unknown flag"),
		strings.HasPrefix(err.Error(), "unknown shorthand flag"):
		ui.Fail(stderr, e.theme, err.Error())
		fmt.Fprintln(stderr)
		_ = root.Usage()
		return exitUsage
	}
	ui.Fail(stderr, e.theme, err.Error())
	return exitError
}

func newRootCmd(e *env) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "tada",
		Short:         "tada - a tiny todo list",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd, f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return silentExit(exitUsage)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitErr{code: exitUsage, err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultPath(), "config file")
	pf.StringVar(&f.dataDir, "data-dir", "", "directory holding the todo data")
	pf.StringVar(&f.store, "store", "", "storage backend (json|sqlite)")
	pf.StringVar(&f.theme, "theme", "", "color theme (classic|neon|mono)")
	pf.StringVar(&f.locale, "locale", "", "sort locale, e.g. sv or en-US")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newAddCmd(e),
		newListCmd(e),
		newDoneCmd(e),
		newClearCmd(e),
		newSortCmd(e),
		newTUICmd(e),
		newExportCmd(e),
		newConfigCmd(e),
	)
	return root
}

// setup resolves config (file < env < flags), theme and logger.
func (e *env) setup(cmd *cobra.Command, f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.store != "" {
		cfg.Store = f.store
	}
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.locale != "" {
		cfg.Locale = f.locale
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return &exitErr{code: exitUsage, err: fmt.Errorf("config: %w", err)}
	}
	e.cfg = cfg
	e.cfgPath = f.configPath
	e.theme, _ = ui.ThemeByName(cfg.Theme)

	lvl, _ := cfg.Level()
	e.log = newLogger(e.stderr, lvl).With(zap.String("cmd", cmd.Name()))
	e.log.Debug("config resolved",
		zap.String("store", cfg.Store),
		zap.String("data_dir", cfg.DataDir),
		zap.String("locale", cfg.Locale))
	return nil
}

func newLogger(w io.Writer, lvl zapcore.Level) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), lvl)
	return zap.New(core)
}
