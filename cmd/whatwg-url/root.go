package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alwinb/whatwg-url/cliout"
	"github.com/alwinb/whatwg-url/config"
	"github.com/alwinb/whatwg-url/logutil"
	"github.com/alwinb/whatwg-url/urlmetrics"
	"github.com/alwinb/whatwg-url/version"
	"github.com/alwinb/whatwg-url/whatwgurl"
)

const appName = "whatwg-url"

// app holds the state shared by the subcommands.
type app struct {
	cfg *config.Config

	configPath string
	output     string
	debug      bool
	metrics    bool
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   appName,
		Short: "Parse, resolve and edit URLs as web browsers do",
		Long: `whatwg-url implements the WHATWG URL standard: parsing with browser error
recovery, reference resolution, normalization, origins and property setters.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.metrics {
				return urlmetrics.Dump(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.output, "output", "o", "", "Output format: default, json or yaml")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&a.configPath, "config", config.DefaultPath(), "Path to the config file")
	flags.BoolVar(&a.metrics, "metrics", false, "Write operation metrics to stderr after the command")

	root.AddCommand(
		a.newParseCommand(),
		a.newResolveCommand(),
		a.newOriginCommand(),
		a.newHostCommand(),
		a.newSetCommand(),
		a.newOpenCommand(),
		a.newMCPCommand(),
		version.NewCommand(version.New(appName)),
	)
	return root
}

// setup loads the config and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("metrics") {
		cfg.Metrics = a.metrics
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.metrics = cfg.Metrics

	if err := cliout.SetFormat(cfg.Output); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), cfg.Debug, cfg.StructuredLogs)
	whatwgurl.SetLogger(logutil.NewLogger("whatwgurl"))
	logutil.NewLogger("cli").WithOperation(cmd.Name()).Debug("command started", "config", a.configPath)
	return nil
}
