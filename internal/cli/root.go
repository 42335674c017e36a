// Package cli is the daylist command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idilsaglam/daylist/internal/config"
	"github.com/idilsaglam/daylist/internal/greeting"
	"github.com/idilsaglam/daylist/internal/session"
	"github.com/idilsaglam/daylist/internal/store"
	"github.com/idilsaglam/daylist/internal/ui"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError marks a mistake in how the command was invoked.
type UsageError struct{ msg string }

func (e *UsageError) Error() string { return e.msg }

func usageErrorf(format string, a ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, a...)}
}

// usageArgs turns a cobra argument validator's error into a UsageError.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &UsageError{msg: err.Error()}
		}
		return nil
	}
}

// app carries state shared by every subcommand of one invocation.
type app struct {
	configFile string
	v          *viper.Viper
	cfg        config.Config
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "daylist",
		Short: "daylist - a greeting and a task list",
		Long: `daylist greets you according to the time of day and keeps a checkbox
task list. Tasks are added pending and can be checked off; nothing is deleted.

The list is kept in a local store (JSON file or SQLite) between commands.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return usageErrorf("missing subcommand")
		},
	}
	root.SetOut(ui.Out)
	root.SetErr(ui.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{msg: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default .daylist.yaml in . or $HOME)")
	pf.String("theme", "", "color theme: classic, neon or mono")
	pf.String("store", "", "store driver: json or sqlite")
	pf.String("store-path", "", "store file path")
	pf.String("timezone", "", "IANA time zone for greetings (default local)")
	pf.Bool("no-color", false, "disable colored output")

	root.AddCommand(
		newGreetCmd(a),
		newAddCmd(a),
		newDoneCmd(a),
		newListCmd(a),
		newUICmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

var flagKeys = map[string]string{
	"theme":      "theme",
	"store":      "store.driver",
	"store-path": "store.path",
	"timezone":   "greeting.timezone",
	"no-color":   "no_color",
	"addr":       "server.addr",
}

// load resolves configuration with flag > env > file > default precedence
// and applies the theme.
func (a *app) load(cmd *cobra.Command) error {
	a.v = config.NewViper(a.configFile)
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ui.SetTheme(cfg.Theme)
	if cfg.NoColor {
		ui.SetColorForcing(false, true)
	}
	return nil
}

func (a *app) clock() (func() time.Time, error) {
	clock, err := greeting.Clock(a.cfg.Greeting.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", a.cfg.Greeting.Timezone, err)
	}
	return clock, nil
}

// openSession opens the configured store and restores the task list.
// The returned close func releases the store.
func (a *app) openSession(ctx context.Context) (*session.Session, func(), error) {
	clock, err := a.clock()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(a.cfg.Store.Driver, a.cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	sess, err := session.Open(ctx, st, clock)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return sess, func() { _ = st.Close() }, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "daylist %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// Run executes args and returns an exit code (0 ok, 1 error, 2 usage).
func Run(ctx context.Context, args []string) int {
	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		ui.Fail(err.Error())
		var ue *UsageError
		if errors.As(err, &ue) {
			ui.Hint("run `daylist --help` for usage")
			return ExitUsage
		}
		return ExitError
	}
	return ExitOK
}
