package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirsize/internal/config"
	"github.com/idelchi/dirsize/internal/dirsize"
	"github.com/idelchi/dirsize/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

func help() string {
	return heredoc.Doc(`
		dirsize reports the aggregate size and last modification time of every entry in a directory.

		Usage:

			dirsize [flags] [path]

		Positional Arguments:
		  path                   Directory to inspect, used when --root is not given.

		Subdirectories are summed recursively, including the size the filesystem reports
		for each directory itself. Directories deeper than --depth below a top-level entry
		are not counted. Passing -1 removes the limit, but beware that large trees can take
		a long time to walk.

		Entries that cannot be read are reported and skipped, the remaining entries are still
		printed. Use --file to report a single file instead of a directory.
	`)
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var options dirsize.Options

	cmd := &cobra.Command{
		Use:           "dirsize [flags] [path]",
		Short:         "Report the aggregate size of each entry in a directory",
		Long:          help(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args, options)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&options.Root, "root", "r", "", "The root directory to start the search from")
	flags.StringVarP(&options.File, "file", "f", "", "The file to inspect size of, only used if root is not provided")
	flags.IntVarP(&options.Depth, "depth", "d", dirsize.DefaultDepth, "The maximum depth to dig to (-1=unlimited)")
	flags.BoolVar(&options.Clean, "clean", false, "Only output name and size")
	flags.BoolVar(&options.Reverse, "reverse", false, "Show the smallest entries first")
	flags.BoolVarP(&options.Human, "human", "H", false, "Print sizes in human readable units (e.g. 1.5 MiB)")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.StringVarP(&options.Config, "config", "c", "", "TOML file with default option values")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	flags.StringVarP(&options.Init, "init", "i", "", fmt.Sprintf("Output completion script for a shell %v", integration.Shells))

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

func (c CLI) run(cmd *cobra.Command, args []string, options dirsize.Options) error {
	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Fprintln(cmd.OutOrStdout(), c.version)

		return nil
	}

	if options.Init != "" {
		rendered, err := integration.Render(cmd, options.Init)
		if err != nil {
			return fmt.Errorf("rendering integration script: %w", err)
		}

		//nolint:forbidigo // Integration script output to console
		fmt.Fprint(cmd.OutOrStdout(), rendered)

		return nil
	}

	if options.Config != "" {
		cfg, err := config.Load(options.Config)
		if err != nil {
			return err
		}

		cfg.Apply(cmd.Flags(), &options)
	}

	if options.Root == "" && len(args) == 1 {
		options.Root = args[0]
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if options.Depth < dirsize.Unbounded {
		return fmt.Errorf("invalid depth %d: must be %d (unlimited) or non-negative", options.Depth, dirsize.Unbounded)
	}

	if options.Root == "" && options.File == "" {
		_ = cmd.Usage()

		return dirsize.ErrNoTarget
	}

	return logic(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
