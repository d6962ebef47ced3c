package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cnharrison/reqview/internal/config"
	"github.com/cnharrison/reqview/internal/har"
	"github.com/cnharrison/reqview/internal/logging"
	"github.com/cnharrison/reqview/internal/ui"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	indent     int
	logFile    string
	logLevel   string
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "reqview <file.har>",
		Short:   "reqview - inspect HTTP captures in the terminal",
		Long:    "reqview opens a HAR capture and shows each request with pretty printed, searchable headers and bodies.",
		Version: version,
		Args:    cobra.ExactArgs(1),
		// main prints the returned error once
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			return runTUI(cfg, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/reqview/config.yaml)")
	flags.IntVar(&opts.indent, "indent", 0, "Spaces per indent level for pretty bodies (0 for compact)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(NewPrettyCommand(opts))

	return cmd
}

// load reads the config file and applies flags the user set explicitly
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("indent") {
		cfg.Indent = o.indent
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runTUI loads the capture and blocks in the terminal UI
func runTUI(cfg *config.Config, path string) error {
	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	capture, err := har.LoadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("failed to load capture")
		return err
	}

	app := ui.NewApplication(capture, path, cfg, logging.Component(logger, "ui"))
	if err := app.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}
