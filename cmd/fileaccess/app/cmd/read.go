package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/fileaccess/access"
)

func newReadCmd(opts *rootOptions) *cobra.Command {
	var encoding string

	readCmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			req := access.Read(args[0]).WithEncoding(encoding)
			return access.Do(a.Accessor, req, func(h access.Handle) error {
				_, err := io.Copy(cmd.OutOrStdout(), h)
				return err
			})
		},
	}
	readCmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Character encoding of the file (IANA name)")
	return readCmd
}
