// Package cli implements the lvrank command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvrank/internal/telemetry"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/katalvlaran/lvrank/session"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

const (
	envPrefix  = "LVRANK"
	tracerName = "github.com/katalvlaran/lvrank/internal/cli"

	keyConfig        = "config"
	keyDamping       = "damping"
	keyTolerance     = "tolerance"
	keyMaxIterations = "max-iterations"
	keyOutput        = "output"
	keyHistory       = "history"
	keyTrace         = "trace"
	keyLogLevel      = "log-level"
)

// ErrBadFlag indicates an unusable flag, environment or config value.
var ErrBadFlag = errors.New("cli: invalid setting")

// app carries everything one invocation needs. Nothing is package-global so
// tests can run command trees side by side.
type app struct {
	out    io.Writer
	errOut io.Writer

	v        *viper.Viper
	logger   *slog.Logger
	sessions *session.Registry
	shutdown func(context.Context) error
}

// Execute runs the command tree with args and flushes tracing on return.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{out: stdout, errOut: stderr, v: viper.New()}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.shutdown != nil {
		if serr := a.shutdown(ctx); serr != nil && err == nil {
			err = fmt.Errorf("flush traces: %w", serr)
		}
	}

	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvrank",
		Short: "PageRank over directed multigraphs",
		Long: `lvrank computes PageRank scores with damped power iteration.

Settings resolve as: flag > LVRANK_* environment > config file >
graph-file parameters > built-in defaults.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (default $HOME/.lvrank.yaml)")
	pf.Float64(keyDamping, pagerank.DefaultDamping, "damping factor in (0,1)")
	pf.Float64(keyTolerance, pagerank.DefaultTolerance, "L1 convergence threshold")
	pf.Int(keyMaxIterations, pagerank.DefaultMaxIterations, "iteration cap")
	pf.StringP(keyOutput, "o", "text", "output format: text|json|yaml")
	pf.Bool(keyHistory, false, "include the per-iteration convergence trace")
	pf.Bool(keyTrace, false, "print OpenTelemetry spans to stderr")
	pf.String(keyLogLevel, "warn", "log level: debug|info|warn|error")

	root.AddCommand(a.rankCommand(), a.generateCommand(), a.versionCommand())

	return root
}

// setup layers configuration and builds the logger, tracer and session registry.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.readConfig(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("%w: log level %q", ErrBadFlag, a.v.GetString(keyLogLevel))
	}
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	switch f := a.v.GetString(keyOutput); f {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: output format %q", ErrBadFlag, f)
	}

	if a.v.GetBool(keyTrace) {
		shutdown, err := telemetry.Init(cmd.Context(), telemetry.Config{
			ServiceName:    "lvrank",
			ServiceVersion: Version,
			Writer:         a.errOut,
		})
		if err != nil {
			return err
		}
		a.shutdown = shutdown
	}

	a.sessions = session.NewRegistry(
		session.WithTTL(0),
		session.WithLogger(a.logger),
		session.WithTracer(telemetry.Tracer(tracerName)),
	)

	return nil
}

func (a *app) readConfig() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(".lvrank")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

// engineOptions appends explicitly set flag/env/config values after the
// graph-file options, so they win.
func (a *app) engineOptions(fileOpts []pagerank.Option) []pagerank.Option {
	opts := append([]pagerank.Option(nil), fileOpts...)
	if a.v.IsSet(keyDamping) {
		opts = append(opts, pagerank.WithDamping(a.v.GetFloat64(keyDamping)))
	}
	if a.v.IsSet(keyTolerance) {
		opts = append(opts, pagerank.WithTolerance(a.v.GetFloat64(keyTolerance)))
	}
	if a.v.IsSet(keyMaxIterations) {
		opts = append(opts, pagerank.WithMaxIterations(a.v.GetInt(keyMaxIterations)))
	}

	return opts
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvrank version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(a.out, "lvrank %s\n", Version)
			return err
		},
	}
}
