package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/fileaccess/records"
)

func newLinesCmd(opts *rootOptions) *cobra.Command {
	var (
		stop     string
		numbered bool
	)

	linesCmd := &cobra.Command{
		Use:   "lines <path>",
		Short: "Print a file line by line",
		Long: `Print a file line by line. With --stop, reading ends after the first line
containing the given text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			var until func(string) bool
			if stop != "" {
				until = records.Contains(stop)
			}
			lines, err := records.ScanLines(a.Accessor, args[0], until)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, line := range lines {
				if numbered {
					fmt.Fprintf(out, "%4d  %s\n", i+1, line)
					continue
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	linesCmd.Flags().StringVar(&stop, "stop", "", "Stop after the first line containing this text")
	linesCmd.Flags().BoolVarP(&numbered, "number", "n", false, "Prefix each line with its number")
	return linesCmd
}
