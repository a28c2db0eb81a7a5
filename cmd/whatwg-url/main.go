// Command whatwg-url parses, resolves and edits URLs the way web browsers do.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/alwinb/whatwg-url/cliout"
	"github.com/alwinb/whatwg-url/config"
	"github.com/alwinb/whatwg-url/whatwgurl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		reportError(err, stderr)
		return 1
	}
	return 0
}

type errorOutput struct {
	Error string `json:"error" yaml:"error"`
	Kind  string `json:"kind" yaml:"kind"`
}

// reportError prints err with its kind. Structured formats go to the regular
// output so that consumers always receive a document.
func reportError(err error, stderr io.Writer) {
	kind := errorKind(err)
	if cliout.IsStructured() {
		_ = cliout.Print(errorOutput{Error: err.Error(), Kind: kind}, nil)
		return
	}
	restore := cliout.SetOutput(stderr)
	defer restore()
	cliout.Error("%v (%s)", err, kind)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, config.ErrInvalidConfig):
		return "invalid_config"
	case errors.Is(err, errNoBase):
		return "missing_base"
	}
	return whatwgurl.ErrorKind(err)
}
