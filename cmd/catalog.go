package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/lehigh-university-libraries/transcriber/internal/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the page images in navigation order",
		Example: `  transcriber catalog --images ./1954_jpg
  transcriber catalog --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.New(stringFlag(cmd, "images", opts.cfg.ImagesDir))
			if err != nil {
				return err
			}
			records := cat.Records()

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(records)
			}

			for i, record := range records {
				fmt.Fprintf(out, "%4d %s\n", i, record.Caption)
			}
			return nil
		},
	}

	cmd.Flags().String("images", "1954_jpg", "Directory of page images")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")

	return cmd
}
