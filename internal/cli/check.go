package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/pingmerge/internal/logfmt"
)

// CheckResult holds check results.
type CheckResult struct {
	Valid    bool             `json:"valid"`
	Findings []logfmt.Finding `json:"findings,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <log>",
		Short: "Check a ping log for problems that would hurt a merge",
		Long: `Check a single ping log for malformed lines and timestamp ordering.

The merge trusts its inputs: it assumes ascending timestamps and treats a
line without a parseable leading timestamp as end of stream, silently
truncating the rest. check surfaces both conditions ahead of time. It is
advisory only; the merge itself never enforces ordering.

Exit codes: 0 when the log is clean, 1 when findings are reported, 2 when
the log cannot be opened.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	f, err := os.Open(path)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("cannot open log %s", path), err)
	}
	defer f.Close()

	formatter.VerboseLog("Checking %s", path)

	findings, err := logfmt.Check(f)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("cannot read log %s", path), err)
	}

	if len(findings) > 0 {
		return outputFindings(formatter, path, findings)
	}

	if opts.Format == "json" {
		if err := formatter.Success(CheckResult{Valid: true}); err != nil {
			return err
		}
		return nil
	}
	return formatter.Success("✓ log is well-formed and ascending")
}

func outputFindings(formatter *OutputFormatter, path string, findings []logfmt.Finding) error {
	if formatter.Format == "json" {
		if err := formatter.Success(CheckResult{Valid: false, Findings: findings}); err != nil {
			return err
		}
	} else {
		for _, fd := range findings {
			fmt.Fprintf(formatter.Writer, "%s:%d: [%s] %s\n", path, fd.Line, fd.Code, fd.Message)
		}
	}
	return NewExitError(ExitFindings, fmt.Sprintf("check reported %d finding(s)", len(findings)))
}
