// Package cli wires the optimizer's three public operations (§6) to a
// cobra command line: a positional script path and flags selecting
// remove_useless, hoist_invariants, optimize (the default), or pass-through.
package cli

import "github.com/spf13/cobra"

var opts Options

// NewRootCommand builds the root cobra.Command for the optctl binary.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "optctl <script>",
		Short: "Optimize scripts in the supported imperative subset",
		Long: `optctl rewrites a script into a semantically-equivalent one that is
free of statements with no observable effect and restructured so that
loop-invariant computations run once, outside the loop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			code := Run(opts)
			if code != 0 {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &exitError{code: code}
			}
			return nil
		},
	}

	root.Flags().BoolVar(&opts.RemoveUseless, "remove-useless", false, "run only the dead-statement elimination pass")
	root.Flags().BoolVar(&opts.HoistInvariants, "hoist-invariants", false, "run only the loop-invariant hoisting pass")
	root.Flags().BoolVar(&opts.Optimize, "optimize", false, "run the fixed-point driver (default)")
	root.Flags().BoolVar(&opts.Passthrough, "passthrough", false, "write the parsed input back out unchanged")
	root.Flags().BoolVar(&opts.JSON, "json", false, "report diagnostics as JSON")
	root.Flags().BoolVar(&opts.Verbose, "verbose", false, "log pipeline stages to stderr")
	root.Flags().BoolVar(&opts.Stdout, "stdout", false, "write the result to stdout instead of a sibling file")
	root.Flags().BoolVar(&opts.Diff, "diff", false, "print a diff of the unparsed output before writing it")

	return root
}

// exitError carries a process exit code back through cobra's error return
// without cobra printing a redundant "Error:" line for already-reported
// diagnostics.
type exitError struct{ code int }

func (e *exitError) Error() string { return "" }

// ExitCode extracts the process exit code an error returned by the root
// command's RunE carries, defaulting to 1 for any other error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return 1
}
