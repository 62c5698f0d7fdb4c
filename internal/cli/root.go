package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"munros/internal/api"
	"munros/internal/config"
	"munros/internal/logging"
	"munros/internal/ui"
)

// Settings holds the global flags
type Settings struct {
	ConfigPath string
	APIURL     string
	LogFile    string
	Debug      bool
}

// runProgram runs the interactive program. Replaced in tests.
var runProgram = func(p *tea.Program) error {
	_, err := p.Run()
	return err
}

// RootCommand creates and returns the root command
func RootCommand() *cobra.Command {
	settings := &Settings{}

	rootCmd := &cobra.Command{
		Use:           "munros",
		Short:         "Search the Munros from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, settings)
		},
	}

	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		listCommand(settings),
		configCommand(settings),
	)

	return rootCmd
}

func setupFlags(rootCmd *cobra.Command, settings *Settings) {
	rootCmd.PersistentFlags().StringVarP(&settings.ConfigPath, "config", "c", "", "Path to the config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&settings.APIURL, "api-url", "", "Base URL of the Munro API, overrides [api] base_url")
	rootCmd.PersistentFlags().StringVar(&settings.LogFile, "log-file", "", "Diagnostic log file, overrides [log] file")
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", false, "Enable debug logging")
}

// configService returns the service for the selected config file
func (s *Settings) configService() config.ConfigService {
	if s.ConfigPath != "" {
		return config.NewConfigServiceAt(s.ConfigPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies flag overrides
func (s *Settings) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := s.configService().Load()
	if err != nil {
		return nil, err
	}

	if s.APIURL != "" {
		cfg.API.BaseURL = s.APIURL
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = s.LogFile
	}
	return cfg, nil
}

// setup loads the config and builds the logger and listing client. With a
// nil stream the log goes to the [log] file and is discarded if that cannot
// be opened. Otherwise it goes to stream unless --log-file names a file.
func (s *Settings) setup(cmd *cobra.Command, stream io.Writer) (*config.Config, *log.Logger, io.Closer, *api.HTTPClient, error) {
	cfg, err := s.loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	opts := logging.FromConfig(cfg.Log, s.Debug)
	opts.Fallback = io.Discard
	if stream != nil {
		opts.Fallback = stream
		if !cmd.Flags().Changed("log-file") {
			opts.File = ""
		}
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	client, err := api.New(api.OptionsFromConfig(cfg.API))
	if err != nil {
		closer.Close()
		return nil, nil, nil, nil, err
	}

	return cfg, logger, closer, client, nil
}

func runInteractive(cmd *cobra.Command, settings *Settings) error {
	// The screen belongs to the program, so nothing may log to it
	cfg, logger, closer, client, err := settings.setup(cmd, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := cmd.Context()

	logger.WithField("endpoint", client.ListURL("")).Info("Starting")
	model := ui.NewModel(ctx, cfg, client, logger)
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	err = runProgram(p)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Info("Interrupted")
		return nil
	}
	if err != nil {
		logger.WithError(err).Error("Error running program")
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Info("Exited normally")
	return nil
}
