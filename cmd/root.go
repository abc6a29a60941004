package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quitcheck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quitcheck",
	Short: "Resignation readiness questionnaires",
	Long: "quitcheck asks a short set of multiple-choice questions and tells you whether\n" +
		"leaving your job now is high risk, needs preparation, or is a strategic move.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides "+config.EnvPath+" env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().String("variant", "", "Questionnaire to preselect (see `quitcheck variants`)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the splash screen")

	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration using --config (highest priority),
// then the QUITCHECK_CONFIG env var, then the default XDG path, and applies
// --log-level on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}
	return cfg, nil
}
