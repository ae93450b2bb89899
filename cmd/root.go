package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lehigh-university-libraries/transcriber/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "transcriber",
		Short: "Transcribe tables from page scans into CSV, one page at a time",
		Long: `Transcriber walks a directory of page images in filename order and offers a blank
31-day grid for each page. Confirmed grids are saved as <image>_table.csv.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			logLevel, _ := cfg.Level()
			if opts.verbose {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(logger)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", fmt.Sprintf("Config file (default %s if present)", config.DefaultPath))
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Verbose logging")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newCatalogCmd(opts))
	cmd.AddCommand(newTemplateCmd())
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newArchiveCmd(opts))

	return cmd
}

// stringFlag returns the flag value when the user set it, otherwise fallback
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		value, _ := cmd.Flags().GetString(name)
		return value
	}
	return fallback
}
