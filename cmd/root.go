package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/xen-tools/gen-policy/internal/config"
	"github.com/xen-tools/gen-policy/internal/ui"
	"github.com/xen-tools/gen-policy/pkg/log"
)

var (
	// configPath points at an optional gen-policy.yaml (--config).
	configPath string
	// logLevel overrides the configured level when non-empty (--log-level).
	logLevel string
	// logFile overrides the configured log path when non-empty (--log-file).
	logFile string
)

// rootCmd reads a compiled policy on stdin and writes C source to stdout.
var rootCmd = &cobra.Command{
	Use:   "gen-policy",
	Short: "Embed a compiled FLASK policy as a C byte array",
	Long: `gen-policy reads a binary XSM/FLASK policy from standard input and writes
C source to standard output declaring xsm_flask_init_policy, its size, and a
placeholder function, ready to be compiled into the hypervisor.

Logs are written to stderr (or --log-file) and never mix with the output.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranscode(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, "Error", err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to gen-policy.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}

// setupLogging merges the config file and flags and installs the default logger.
func setupLogging() error {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.Path = logFile
	}

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}
	return log.Init(cfg.Logging.Path, cfg.Logging.Level)
}
