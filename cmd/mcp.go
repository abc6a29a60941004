package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quitcheck/internal/logger"
	"github.com/abhisek/quitcheck/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the questionnaires over MCP (stdio)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// stdout carries the protocol; logs go to the log file or stderr.
		log, closeLog, err := cfg.Logger()
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
		if cfg.LogFile == "" {
			level, _ := logger.ParseLevel(cfg.LogLevel)
			log = logger.NewConsoleLogger(os.Stderr, level)
		}

		log.Info("mcp server starting", "version", version)
		return mcpserver.ServeStdio(mcpserver.New(version, log))
	},
}
