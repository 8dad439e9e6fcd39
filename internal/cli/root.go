// Package cli implements the anglecalc command line tool.
//
// Defaults for all commands are read with the following precedence:
//
//  1. command line flags (--style, --decimals, ...)
//  2. environment variables with prefix ANGLECALC_ (ANGLECALC_STYLE, ANGLECALC_LOG_LEVEL, ...)
//  3. the config file given with --config, or .anglecalc.yaml in the working directory
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/oliverbestmann/angle"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type app struct {
	config *viper.Viper
	log    *slog.Logger

	profiler interface{ Stop() }
}

type settings struct {
	Style    angle.Style
	Decimals int
	Epsilon  angle.Angle
}

// NewRootCommand builds the anglecalc command with all its sub commands.
func NewRootCommand() *cobra.Command {
	a := &app{
		config: viper.New(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:   "anglecalc",
		Short: "Convert, normalize and evaluate angles",
		Long: `anglecalc parses angles like "12.5deg", "0.25turn" or 12°34'56" and
prints them in other units, wraps them into a canonical range, compares them
on the circle and evaluates trigonometric functions.

Examples:
  anglecalc convert 12.5deg --style dms
  anglecalc convert 1rad --all
  anglecalc wrap -- -90deg
  anglecalc compare 10deg 370deg
  anglecalc trig 90deg`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is .anglecalc.yaml)")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("style", string(angle.StyleDeg), "output style (rad, deg, grad, turn, d, dm, dms)")
	flags.Int("decimals", 6, "number of decimal places in the output")
	flags.String("epsilon", "1e-9rad", "tolerance when comparing angles")
	flags.String("profile", "", "write a profile of the run (cpu, mem)")
	flags.String("profile-path", ".", "directory to write the profile to")

	bindFlags(a.config, flags)

	root.AddCommand(
		a.withTeardown(newConvertCommand(a)),
		a.withTeardown(newWrapCommand(a)),
		a.withTeardown(newCompareCommand(a)),
		a.withTeardown(newTrigCommand(a)),
		a.withTeardown(newDMSCommand(a)),
	)

	return root
}

func bindFlags(config *viper.Viper, flags *pflag.FlagSet) {
	config.SetEnvPrefix("ANGLECALC")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	flags.VisitAll(func(flag *pflag.Flag) {
		_ = config.BindPFlag(flag.Name, flag)
	})
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.readConfigFile(); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.config.GetString("log-level"))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if file := a.config.ConfigFileUsed(); file != "" {
		a.log.Debug("Config file loaded", slog.String("path", file))
	}

	return a.startProfiler()
}

func (a *app) readConfigFile() error {
	if path := a.config.GetString("config"); path != "" {
		a.config.SetConfigFile(path)
	} else {
		a.config.SetConfigName(".anglecalc")
		a.config.SetConfigType("yaml")
		a.config.AddConfigPath(".")
	}

	err := a.config.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func (a *app) startProfiler() error {
	var mode func(*profile.Profile)

	switch kind := a.config.GetString("profile"); kind {
	case "":
		return nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return fmt.Errorf("unknown profile %q (supported: cpu, mem)", kind)
	}

	a.log.Info("Profiling enabled",
		slog.String("profile", a.config.GetString("profile")),
		slog.String("path", a.config.GetString("profile-path")),
	)

	a.profiler = profile.Start(
		mode,
		profile.ProfilePath(a.config.GetString("profile-path")),
		profile.Quiet,
		profile.NoShutdownHook,
	)

	return nil
}

// withTeardown stops the profiler once the command returns. Post run hooks
// are not used, cobra skips them if RunE fails.
func (a *app) withTeardown(cmd *cobra.Command) *cobra.Command {
	runE := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer a.teardown()
		return runE(cmd, args)
	}

	return cmd
}

func (a *app) teardown() {
	if a.profiler != nil {
		a.profiler.Stop()
		a.profiler = nil
	}
}

func (a *app) settings() (settings, error) {
	style, err := angle.ParseStyle(a.config.GetString("style"))
	if err != nil {
		return settings{}, err
	}

	decimals := a.config.GetInt("decimals")
	if decimals < 0 {
		return settings{}, fmt.Errorf("%w: decimals must not be negative, got %d", angle.ErrInvalidArgument, decimals)
	}

	epsilon, err := angle.Parse(a.config.GetString("epsilon"))
	if err != nil {
		return settings{}, fmt.Errorf("epsilon: %w", err)
	}

	return settings{Style: style, Decimals: decimals, Epsilon: epsilon}, nil
}

// parseAngle parses a command line argument and logs the result.
func (a *app) parseAngle(text string) (angle.Angle, error) {
	parsed, err := angle.Parse(text)
	if err != nil {
		return angle.Angle{}, err
	}

	a.log.Debug("Parsed angle", slog.String("input", text), slog.Any("angle", parsed))

	return parsed, nil
}
