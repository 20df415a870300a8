package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/pingmerge/internal/merge"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// TokenGen allows overriding the run token generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	TokenGen merge.TokenGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the pingmerge CLI.
//
// The root command is the merge itself, so a file synchronizer can invoke
// the tool as an external-merge hook with exactly three positional
// arguments and no subcommand word:
//
//	pingmerge local.log remote.log merged.log
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pingmerge <log-a> <log-b> <merged-out>",
		Short: "Merge two TagTime ping logs into one canonical log",
		Long: `Merge two time-ordered TagTime ping logs into one canonical log.

Both inputs must already be ascending by timestamp. The merge is a single
pass with one line of lookahead per input: lines with distinct timestamps
interleave in timestamp order, and two records of the same ping resolve
deterministically (identical lines collapse; a RETRO-tagged answer loses
to one given at prompt time; otherwise the longer line wins, with log B
winning exact ties). The winning line is written byte-for-byte.

The merge runs unattended and never prompts. Success is silent on stdout;
diagnostics go to stderr.

Example:
  pingmerge ~/tagtime/phone.log ~/tagtime/laptop.log ~/tagtime/merged.log`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(opts, args[0], args[1], args[2])
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Subcommands
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

func runMerge(opts *RootOptions, pathA, pathB, outPath string) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	tokenGen := opts.TokenGen
	if tokenGen == nil {
		tokenGen = merge.UUIDv7Generator{}
	}
	run := tokenGen.Generate()

	slog.Debug("merge starting", "run", run, "log_a", pathA, "log_b", pathB, "out", outPath)

	if err := merge.MergeFiles(pathA, pathB, outPath); err != nil {
		slog.Error("merge failed", "run", run, "error", err)
		return WrapExitError(ExitCommandError, "merge failed", err)
	}

	slog.Debug("merge complete", "run", run, "out", outPath)
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
