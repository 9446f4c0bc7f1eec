package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/fileaccess/records"
)

func newCSVCmd(opts *rootOptions) *cobra.Command {
	var (
		tsv    bool
		ragged bool
		rows   []string
	)

	csvCmd := &cobra.Command{
		Use:   "csv <path>",
		Short: "Print or write delimited rows",
		Long: `Print the rows of a CSV or TSV file. Files ending in .tsv, or any file with
--tsv, are read with a tab delimiter.

With --row the given rows are written first, replacing the file. Each --row
value uses the same delimiter as the file.`,
		Example: `  fileaccess csv demo_files/data.csv
  fileaccess csv people.csv --row "Name,Age" --row "Alice,24"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			path := args[0]
			dialect := records.DialectFor(path)
			if tsv {
				dialect = records.TSV
			}
			dialect.Ragged = ragged

			if len(rows) > 0 {
				parsed, err := splitRows(rows, dialect)
				if err != nil {
					return err
				}
				if err := records.WriteRows(a.Accessor, path, dialect, parsed); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			return records.EachRow(a.Accessor, path, dialect, func(row []string) error {
				_, err := fmt.Fprintln(out, row)
				return err
			})
		},
	}
	csvCmd.Flags().BoolVar(&tsv, "tsv", false, "Use a tab delimiter")
	csvCmd.Flags().BoolVar(&ragged, "ragged", false, "Allow rows with differing field counts")
	csvCmd.Flags().StringArrayVar(&rows, "row", nil, "Row to write before printing (repeatable)")
	return csvCmd
}
