// Package cli implements the redpen command line: word diffs, applying edit collections, and rendering annotated markup.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/redpen/redpen/internal/simplelogger"
)

// Version is the redpen version. It is a var so build tooling can override it via -ldflags "-X .../internal/cli.Version=1.2.3".
var Version = "0.1.0"

// In/Out/Err override standard I/O. If nil, defaults are used. Overriding is useful for testing.
type RunOptions struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// exitError carries a recommended exit code. Code 2 marks misuse (bad arguments or flags); anything else is a failure of a well-formed request.
type exitError struct {
	Code int
	Err  error
}

func (e exitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e exitError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return exitError{Code: 2, Err: fmt.Errorf(format, args...)}
}

// Run runs the CLI with args (typically you'd use os.Args).
//
// It returns a recommended exit code (0, 1, or 2) and an error, if any:
//   - 0 -> err == nil
//   - 1 -> err != nil, but the structure of args is sound (flags are correct, etc).
//   - 2 -> err != nil, args parse error or misuse of flags, etc.
//
// Note that in cases of errors, Run has already displayed an error message to opts.Err || Stderr. Callers may use os.Exit with the exit code.
func Run(args []string, opts *RunOptions) (int, error) {
	argv := args
	if len(argv) > 0 {
		argv = argv[1:]
	}

	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	var errW io.Writer = os.Stderr
	if opts != nil {
		if opts.In != nil {
			in = opts.In
		}
		if opts.Out != nil {
			out = opts.Out
		}
		if opts.Err != nil {
			errW = opts.Err
		}
	}

	root, state := newRootCommand()
	root.SetArgs(argv)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errW)

	cmd, err := root.ExecuteC()
	state.finish()
	if err == nil {
		return 0, nil
	}

	code := exitCode(err)
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(errW, "Error: %s\n", msg)
	}
	if code == 2 && cmd != nil {
		fmt.Fprintf(errW, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return code, err
}

func exitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	// cobra reports unknown subcommands as plain errors.
	if strings.HasPrefix(err.Error(), "unknown command") {
		return 2
	}
	return 1
}

// finish flushes logs and undoes any log file override made for this run.
func (s *runState) finish() {
	if s.loaded {
		simplelogger.Logger().Debug("run finished")
	}
	_ = simplelogger.Sync()
	if s.setLogFile {
		simplelogger.SetFile("")
	}
}
