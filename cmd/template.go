package cmd

import (
	"github.com/lehigh-university-libraries/transcriber/internal/export"
	"github.com/lehigh-university-libraries/transcriber/internal/tabletemplate"
	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print the blank table for a page counter as CSV",
		Long: `Prints the same blank 31-row grid the web interface shows for a page counter.
Useful for transcribing in a spreadsheet and importing with "transcriber export".`,
		Example: `  transcriber template --page 5 > blank.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := export.EncodeCSV(tabletemplate.Generate(page))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page counter the Page label is derived from")

	return cmd
}
