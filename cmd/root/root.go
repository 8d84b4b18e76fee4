// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/ledger-taxonomy/internal/config"
	"fjacquet/ledger-taxonomy/internal/container"
	"fjacquet/ledger-taxonomy/internal/logging"
	"fjacquet/ledger-taxonomy/internal/taxonomy"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every subcommand
type GlobalFlags struct {
	ConfigFile string
	DataFile   string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before each command
	AppConfig *config.Config

	// AppContainer holds the wired dependencies for the running command
	AppContainer *container.Container

	// Flags holds the values of the persistent flags
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ledger-taxonomy",
		Short: "Keep ledger accounts and categories consistent and query transactions.",
		Long: `ledger-taxonomy manages the account and category registries of a personal
ledger. Renames cascade into every transaction, recurring template and
budget; transactions can be queried with quick filters and advanced
conditions and summarized into totals and a daily series.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close resources")
				}
				AppContainer = nil
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&Flags.ConfigFile, "config", "c", "", "Config file (default searches ./config.yaml and ~/.ledger-taxonomy)")
	Cmd.PersistentFlags().StringVarP(&Flags.DataFile, "data", "d", "", "Ledger YAML file (overrides data.file)")
	Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format: text or json")
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.InitializeConfigFrom(Flags.ConfigFile)
	if err != nil {
		return err
	}
	if Flags.DataFile != "" {
		cfg.Data.File = Flags.DataFile
	}
	if Flags.LogLevel != "" {
		cfg.Log.Level = Flags.LogLevel
	}
	if Flags.LogFormat != "" {
		cfg.Log.Format = Flags.LogFormat
	}

	stderr := cmd.ErrOrStderr()
	c, err := container.NewContainer(cfg, container.WithNotifier(taxonomy.NotifierFunc(func(msg string) {
		fmt.Fprintln(stderr, msg)
	})))
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the container built for the running command, or
// nil outside of a command run.
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the configuration loaded for the running command
func GetConfig() *config.Config {
	return AppConfig
}
