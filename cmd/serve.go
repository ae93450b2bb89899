package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/transcriber/internal/catalog"
	"github.com/lehigh-university-libraries/transcriber/internal/export"
	"github.com/lehigh-university-libraries/transcriber/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start web server for the transcription interface",
		Long: `Starts the Transcriber web interface on the specified port.

The image directory is scanned once at startup. Each browser tab gets its own
session with its own position in the catalog.`,
		Example: `  # Start server on default port 8888 with images from ./1954_jpg
  transcriber serve

  # Custom image directory and port
  transcriber serve --images ./scans --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := stringFlag(cmd, "port", opts.cfg.Port)
			imagesDir := stringFlag(cmd, "images", opts.cfg.ImagesDir)
			outputDir := stringFlag(cmd, "output", opts.cfg.OutputDir)
			staticDir := stringFlag(cmd, "static", opts.cfg.StaticDir)

			cat, err := catalog.New(imagesDir)
			if err != nil {
				return err
			}

			handler := handlers.New(cat, export.New(outputDir), staticDir)

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: handler.Routes(),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Transcriber interface available", "addr", addr, "url", "http://localhost"+addr, "images", cat.Len(), "images_dir", imagesDir)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringP("port", "p", "8888", "Port to listen on")
	cmd.Flags().String("images", "1954_jpg", "Directory of page images")
	cmd.Flags().String("output", ".", "Directory exports are written to")
	cmd.Flags().String("static", "static", "Directory holding the editor page")

	return cmd
}
