// Package cli wires the dirspace command-line front-end: flag parsing,
// dispatch into internal/scan, and output formatting. None of the
// size-tree logic lives here.
package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nodestack/dirspace/internal/scan"
)

// runOptions collects the flag values for a single invocation.
type runOptions struct {
	path       string
	timeOnly   bool
	sequential bool
	threads    uint
	rootOnly   bool
	selfSize   bool
	logical    bool
	output     string
	debug      bool
}

// New builds the root cobra command for the given version string.
func New(version string) *cobra.Command {
	opts := runOptions{output: "table"}

	cmd := &cobra.Command{
		Use:           "dirspace [flags] [path]",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		Short:         "Report on-disk space usage as a size tree",
		Long: heredoc.Doc(`
			dirspace computes the on-disk space occupied by a file, directory, or
			subtree and reports a hierarchical size breakdown.

			It honors filesystem-boundary rules (mount points, firmlinks,
			hard-link aliases, symlinks) so a scan of / does not descend into
			secondary volumes, while a scan that starts at one works normally.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.path = args[0]
			} else {
				opts.path = "."
			}

			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.timeOnly, "time-only", false, "Emit only the elapsed milliseconds")
	flags.BoolVar(&opts.sequential, "sequential", false, "Force the worker pool to a single lane")
	flags.UintVar(&opts.threads, "threads", 0, "Override the worker pool size (0 = auto)")
	flags.BoolVar(&opts.rootOnly, "root-only", false, "Prune the root node's children after aggregation")
	flags.BoolVar(&opts.selfSize, "self-size", false, "Include each directory's own entry size in its total")
	flags.BoolVar(&opts.logical, "logical", false, "Use logical size instead of allocated (on-disk) size")
	flags.StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}

func run(opts runOptions) error {
	log := scan.NewLogger(opts.debug)

	scanOpts := []scan.Option{scan.WithLogger(log)}
	if opts.sequential {
		scanOpts = append(scanOpts, scan.WithSequential())
	}

	if opts.threads > 0 {
		scanOpts = append(scanOpts, scan.WithMaxThreads(opts.threads))
	}

	enableProgress := opts.output != "json" && !opts.debug && isTerminalStderr()
	if enableProgress {
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		scanOpts = append(scanOpts, scan.WithProgress(scan.DefaultProgressInterval, func(files, bytes int64) {
			printProgress(files, bytes)
		}))
	}

	result := scan.Scan(opts.path, opts.rootOnly, opts.selfSize, !opts.logical, scanOpts...)

	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if opts.timeOnly {
		fmt.Printf("%dms\n", result.ElapsedMillis())

		return nil
	}

	switch opts.output {
	case "json":
		return PrintJSON(result, os.Stdout)
	case "table":
		return PrintTable(result, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", opts.output)
	}
}

func printProgress(files, bytes int64) {
	msg := fmt.Sprintf("Scanning… %d entries, %s", files, humanizeBytes(uint64(bytes)))
	fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
}
