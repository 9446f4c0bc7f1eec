package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmgilman/fileaccess/access"
	"github.com/jmgilman/fileaccess/cmd/fileaccess/app"
	"github.com/jmgilman/fileaccess/config"
)

type rootOptions struct {
	configPath string
	baseDir    string
	backend    string
	logLevel   string
	quiet      bool
	jsonErrors bool
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fileaccess",
		Short: "Scoped file access with classified failures",
		Long: `fileaccess reads and writes files below a base directory. Every access
releases its file exactly once and reports failures by kind:
NotFound, PermissionDenied, MalformedContent, GenericOSFailure or
UnknownFailure.

Configuration is read from --config (YAML), then FILEACCESS_* environment
variables, then flags.

Common workflows:
  fileaccess seed                          Write the demo files
  fileaccess read demo_files/data.txt      Print a file
  fileaccess append log.txt "New entry"    Append a line
  fileaccess csv demo_files/data.tsv       Print delimited rows`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVarP(&opts.baseDir, "base-dir", "d", "", "Base directory for relative paths")
	flags.StringVar(&opts.backend, "backend", "", "Storage backend: local, memory or minio")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress status lines")
	flags.BoolVar(&opts.jsonErrors, "json", false, "Print failures as JSON")

	rootCmd.AddCommand(
		newReadCmd(opts),
		newWriteCmd(opts, access.ModeWrite),
		newWriteCmd(opts, access.ModeAppend),
		newLinesCmd(opts),
		newCSVCmd(opts),
		newJSONCmd(opts),
		newYAMLCmd(opts),
		newSeedCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// load resolves configuration and builds the App for a command.
func (o *rootOptions) load(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-dir") {
		cfg.BaseDir = o.baseDir
	}
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("quiet") {
		cfg.Quiet = o.quiet
	}

	return app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Run executes the command line in args and returns the exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		reportError(stderr, err, opts.jsonErrors)
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
