package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/fileaccess/records"
)

func newJSONCmd(opts *rootOptions) *cobra.Command {
	var sample bool

	jsonCmd := &cobra.Command{
		Use:   "json <path>",
		Short: "Validate and pretty-print a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if sample {
				if err := records.WriteJSON(a.Accessor, args[0], samplePeople); err != nil {
					return err
				}
			}

			v, err := records.ReadJSON[interface{}](a.Accessor, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		},
	}
	jsonCmd.Flags().BoolVar(&sample, "sample", false, "Write sample records to the file first")
	return jsonCmd
}

func newYAMLCmd(opts *rootOptions) *cobra.Command {
	var sample bool

	yamlCmd := &cobra.Command{
		Use:   "yaml <path>",
		Short: "Validate and pretty-print a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if sample {
				if err := records.WriteYAML(a.Accessor, args[0], samplePeople); err != nil {
					return err
				}
			}

			v, err := records.ReadYAML[interface{}](a.Accessor, args[0])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	yamlCmd.Flags().BoolVar(&sample, "sample", false, "Write sample records to the file first")
	return yamlCmd
}
