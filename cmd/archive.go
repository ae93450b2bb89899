package cmd

import (
	"fmt"
	"sort"

	"github.com/lehigh-university-libraries/transcriber/internal/archive"
	"github.com/spf13/cobra"
)

func newArchiveCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Collect every exported table into one Parquet file",
		Long: `Reads every *_table.csv in the export directory and writes one Parquet file with
a row per page and day. Files that do not have the template's shape are skipped.`,
		Example: `  transcriber archive --output tables.parquet
  transcriber archive show tables.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := archive.Build(stringFlag(cmd, "dir", opts.cfg.OutputDir), output)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Archived %d rows from %d files into %s\n", summary.Rows, summary.Files, output)
			for _, name := range summary.Skipped {
				fmt.Fprintf(out, "  skipped %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().String("dir", ".", "Directory holding the exported tables")
	cmd.Flags().StringVar(&output, "output", "tables.parquet", "Parquet file to write")

	cmd.AddCommand(newArchiveShowCmd())

	return cmd
}

func newArchiveShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <archive.parquet>",
		Short: "Summarize a Parquet archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := archive.Read(args[0])
			if err != nil {
				return err
			}

			perSource := make(map[string]int)
			for _, row := range rows {
				perSource[row.Source]++
			}
			sources := make([]string, 0, len(perSource))
			for source := range perSource {
				sources = append(sources, source)
			}
			sort.Strings(sources)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d rows from %d files\n", len(rows), len(sources))
			for _, source := range sources {
				fmt.Fprintf(out, "  %-40s %d\n", source, perSource[source])
			}
			return nil
		},
	}
}
