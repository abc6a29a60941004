package cmd

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/quitcheck/internal/app"
	"github.com/abhisek/quitcheck/internal/variant"
)

// runApp loads configuration and variants, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("stdout is not a terminal; use `quitcheck score` for non-interactive runs")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if name, _ := cmd.Flags().GetString("variant"); name != "" {
		cfg.Variant = name
	}
	// Reject an unknown preference before the screen opens.
	if _, err := variant.Load(cfg.Variant); err != nil {
		return err
	}

	all, err := variant.All()
	if err != nil {
		return err
	}

	log, closeLog, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	log.Info("starting", "version", version, "variant", cfg.Variant)

	return app.Run(app.Options{
		Config:     cfg,
		Variants:   all,
		Logger:     log,
		SkipSplash: skipSplash,
	})
}
