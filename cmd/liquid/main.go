package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := runContext(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return runContext(context.Background(), args, stdin, stdout, stderr)
}

// runContext executes the command tree; ctx bounds long-running commands such as render --watch
func runContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	defer a.close()

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitCodeSuccess
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, FmtErrorWithCause, exitErr.msg, exitErr.err)
		return exitErr.code
	}

	// Flag parsing and unknown commands
	fmt.Fprintf(stderr, FmtErrorWithDetail, CLIName, err.Error())
	return ExitCodeUsageError
}

// exitError carries the exit code and headline for a failed command
type exitError struct {
	code int
	msg  string
	err  error
}

func newExitError(code int, msg string, err error) *exitError {
	return &exitError{code: code, msg: msg, err: err}
}

func (e *exitError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}
