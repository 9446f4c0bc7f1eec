package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/fileaccess/config"
	"github.com/jmgilman/fileaccess/internal/output"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the demo files below the base directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			p := output.New(cmd.OutOrStdout())
			target := a.Config.Backend + " backend"
			if a.Config.Backend == config.BackendLocal {
				if target, err = a.Config.BaseDirAbs(); err != nil {
					return err
				}
			}
			p.Info("seeding demo files into " + target)

			names, err := a.Seed()
			if err != nil {
				return err
			}

			p.Success(fmt.Sprintf("seeded %d demo %s", len(names), output.Plural(len(names), "file", "files")))
			for _, name := range names {
				p.Line("  " + p.Bold(name))
			}
			return nil
		},
	}
}
