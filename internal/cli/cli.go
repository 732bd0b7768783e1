package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

// Exit codes returned through ExitError.
const (
	ExitInvalidProgram = 1
	ExitUsage          = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// Execute runs the command line args. Every non-nil error it returns is an
// *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything cobra rejects before our code runs is a usage problem.
	return usageError(err)
}

// NewRootCommand builds the flowgraph command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "flowgraph",
		Short: "Validate $...$ flow programs and export their dependency graphs",
		Long: `flowgraph reads a flow program such as

  $s0,{s1,s2},s3#{s0}$

where [..] runs tasks in order, {..} runs them in parallel, #{..} adds
explicit dependencies and ! stops a task from feeding what follows. It
checks the program and emits the resulting dependency graph.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	opts.register(root)

	root.AddCommand(
		newCheckCommand(opts),
		newGraphCommand(opts),
		newFmtCommand(opts),
	)
	return root
}

// runApp wraps an app call, mapping rejected programs and I/O failures to
// exit code 1.
func runApp(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: ExitInvalidProgram, Message: err.Error()}
}
