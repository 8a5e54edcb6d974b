// Package main provides the doorstep binary entry point.
// With no subcommand it opens the SDL window; `script` drives the same screens
// headlessly from line commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/config"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/locale"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/sdlhost"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "doorstep"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			doorstep.CloseLogger()
			os.Exit(2)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	doorstep.CloseLogger()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
	locale     string
	route      string
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Account entry screens: onboarding, login, signup and password reset",
		Long: `doorstep shows four account entry screens in an SDL window.

Screens are driven with arrow keys or a game controller: Up/Down move focus,
A (Enter) activates, B (Escape) goes back. Submitting a form only shows a
confirmation message.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, appOpts, err := setup(opts)
			if err != nil {
				return err
			}

			host, err := sdlhost.New(cfg, appOpts)
			if err != nil {
				return err
			}

			err = host.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				doorstep.GetLogger().Info("Interrupted; exiting")
				return nil
			}
			return err
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file path (TOML); defaults to $"+constants.ConfigPathEnvVar)
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	pf.StringVar(&opts.locale, "locale", "", "Display language (en, es); overrides the config file")
	pf.StringVar(&opts.route, "route", "", "Initial route; overrides the config file")

	cmd.AddCommand(scriptCmd(opts), routesCmd(opts), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// loadConfig reads the config file, applies flag overrides and validates the result.
func loadConfig(opts *options) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	if opts.route != "" {
		cfg.InitialRoute = opts.route
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// setup loads configuration, configures logging and resolves the locale.
func setup(opts *options) (config.Config, doorstep.AppOptions, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return config.Config{}, doorstep.AppOptions{}, err
	}

	internalLevel := cfg.Log.InternalLevel
	if os.Getenv(constants.DebugEnvVar) != "" {
		internalLevel = "debug"
	}
	doorstep.SetupLogging(doorstep.LogOptions{
		Path:          cfg.Log.Path,
		Level:         cfg.Log.Level,
		InternalLevel: internalLevel,
	})

	loc, err := locale.New(cfg.Locale)
	if err != nil {
		return config.Config{}, doorstep.AppOptions{}, err
	}

	doorstep.GetLogger().Debug("Configuration loaded",
		"initial_route", cfg.InitialRoute,
		"locale", loc.Tag().String(),
		"theme", cfg.Theme.Name)

	return cfg, doorstep.AppOptions{
		InitialRoute: cfg.InitialRoute,
		Localizer:    loc,
	}, nil
}
