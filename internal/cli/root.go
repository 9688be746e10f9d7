// Package cli implements the tilookup command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/jpl-au/terminfo"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// Exit codes by failure kind.
const (
	exitNotFound = 1
	exitInvalid  = 2
	exitFailure  = 3
)

// App carries state shared by all subcommands.
type App struct {
	cfgFile   string
	verbose   bool
	lookupEnv func(string) (string, bool)
	logger    *log.Logger
	settings  Settings
}

// NewRootCommand builds the command tree. lookupEnv supplies the terminfo
// environment variables; nil means the process environment.
func NewRootCommand(lookupEnv func(string) (string, bool)) *cobra.Command {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	app := &App{lookupEnv: lookupEnv}

	root := &cobra.Command{
		Use:   "tilookup",
		Short: "Locate compiled terminfo entries",
		Long: `tilookup searches for a compiled terminfo entry the same way terminal
libraries do: $TERMINFO, $HOME/.terminfo, $TERMINFO_DIRS, then the
built-in directory list. Each directory is searched under both the
first-letter layout (x/xterm) and the hex layout (78/xterm).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "log every path tried")
	root.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/tilookup/config.toml)")

	root.AddCommand(newFindCommand(app))
	root.AddCommand(newReadCommand(app))
	root.AddCommand(newSnapshotCommand(app))
	root.AddCommand(newConfigCommand(app))
	return root
}

func (a *App) init(stderr io.Writer) error {
	a.logger = log.NewWithOptions(stderr, log.Options{Prefix: "tilookup"})
	settings, err := loadSettings(a.cfgFile, a.lookupEnv)
	if err != nil {
		return err
	}
	a.settings = settings
	if a.verbose || settings.Verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	if settings.File != "" {
		a.logger.Debug("loaded config", "file", settings.File)
	}
	return nil
}

// resolver builds a Resolver from the loaded settings. onAttempt may be nil.
func (a *App) resolver(onAttempt func(terminfo.Attempt)) *terminfo.Resolver {
	cfg := terminfo.DefaultConfig()
	cfg.Terminfo = a.settings.Terminfo
	cfg.TerminfoDirs = a.settings.TerminfoDirs
	cfg.LookupEnv = a.lookupEnv
	cfg.Logger = a.logger
	cfg.OnAttempt = onAttempt
	if a.settings.Check {
		cfg.Check = terminfo.CheckEntry
	}
	return terminfo.New(cfg)
}

// resolveArgs resolves the name in args, or $TERM when there is none.
func resolveArgs(r *terminfo.Resolver, args []string) (*terminfo.Record, error) {
	if len(args) == 1 {
		return r.FromTerm(args[0])
	}
	return r.FromEnv()
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch terminfo.KindOf(err) {
	case terminfo.KindNotFound:
		return exitNotFound
	case terminfo.KindInvalidInput:
		return exitInvalid
	default:
		return exitFailure
	}
}

// Execute runs the command line and exits on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(nil),
		fang.WithVersion(fmt.Sprintf("%s (commit: %s)", Version, Commit)),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(exitCode(err))
	}
}
