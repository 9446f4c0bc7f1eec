package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/fileaccess/access"
)

// newWriteCmd builds the write and append commands, which differ only in
// mode.
func newWriteCmd(opts *rootOptions, mode access.Mode) *cobra.Command {
	var (
		encoding  string
		fromStdin bool
	)

	short := "Replace a file with the given text"
	if mode == access.ModeAppend {
		short = "Append the given text to a file"
	}

	writeCmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <path> [text...]", mode),
		Short: short,
		Long: short + `.

The remaining arguments are joined with spaces and written as one line.
With --stdin the content is copied from standard input unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if fromStdin {
				if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return err
				}
			} else {
				data = []byte(strings.Join(args[1:], " ") + "\n")
			}

			req := access.Request{Path: args[0], Mode: mode, Encoding: encoding}
			return access.WriteAll(a.Accessor, req, data)
		},
	}
	writeCmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Character encoding to write (IANA name)")
	writeCmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read content from standard input")
	return writeCmd
}
