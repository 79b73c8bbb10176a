// zigdoc generates API reference documentation
// from the doc comments of a Zig source tree.
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/zctor-project/zigdoc/internal/apiref"
	"github.com/zctor-project/zigdoc/internal/zigsrc"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("zigdoc: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	finder := zigsrc.Finder{}
	if opts.Debug.Bool() {
		finder.DebugLog = log.New(debugw, "", 0)
	}

	gen := Generator{
		Log:    cmd.log,
		Finder: &finder,
		Processor: &zigsrc.Processor{
			Root: opts.SrcDir,
			Log:  cmd.log,
		},
		Renderer: new(apiref.Renderer),
	}

	return gen.Generate(opts.SrcDir, opts.DocsDir)
}
