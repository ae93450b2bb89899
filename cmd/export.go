package cmd

import (
	"fmt"
	"os"

	"github.com/lehigh-university-libraries/transcriber/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var imagePath string
	var inputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save an edited table for an image without the web interface",
		Long: `Reads an edited table (CSV with the template header) and writes it as
<image>_table.csv, exactly as confirming in the web interface would.`,
		Example: `  transcriber export --image 1954_jpg/page007.jpg --input edited.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			table, err := export.DecodeCSV(data)
			if err != nil {
				return err
			}

			result, err := export.New(stringFlag(cmd, "output", opts.cfg.OutputDir)).Export(table, imagePath)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&imagePath, "image", "", "Image the table was transcribed from (required)")
	cmd.Flags().StringVar(&inputPath, "input", "", "Edited table CSV (required)")
	cmd.Flags().String("output", ".", "Directory the export is written to")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
