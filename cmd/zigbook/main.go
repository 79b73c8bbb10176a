// zigbook assembles the chapters of the zctor documentation
// into a single book, as markdown or HTML.
package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/zctor-project/zigdoc/internal/book"
	"github.com/zctor-project/zigdoc/internal/html"
	"github.com/zctor-project/zigdoc/internal/sliceutil"
)

// errValidationFailed reports that -validate found problems.
// The report has already been printed when this is returned.
var errValidationFailed = errors.New("validation failed")

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
		if errors.Is(err, errValidationFailed) {
			// The validation report is the error message.
			return 1
		}
		cmd.log.Printf("zigbook: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) error {
	registry := append(book.DefaultRegistry(),
		sliceutil.Transform(opts.Chapters, func(ch chapterEntry) book.Chapter {
			return book.Chapter{
				Filename: ch.Filename,
				Title:    ch.Title,
			}
		})...)

	asm := book.Assembler{
		Dir:      opts.DocsDir,
		Registry: registry,
		Log:      cmd.log,
	}

	switch {
	case opts.List:
		return asm.List(cmd.Stdout)
	case opts.Validate:
		ok, err := asm.Validate(cmd.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			return errValidationFailed
		}
		return nil
	}

	out := opts.Output
	if out == "" {
		out = opts.Format.defaultOutput()
	}

	var md bytes.Buffer
	if err := asm.Assemble(&md); err != nil {
		return err
	}

	switch opts.Format {
	case formatHTML:
		r := html.Renderer{Title: "zctor Documentation Book"}
		var page bytes.Buffer
		if err := r.Render(&page, md.Bytes()); err != nil {
			return err
		}
		if err := os.WriteFile(out, page.Bytes(), 0o644); err != nil {
			return errtrace.Wrap(err)
		}
		cmd.log.Printf("HTML book generated: %v", out)

	default:
		if err := os.WriteFile(out, md.Bytes(), 0o644); err != nil {
			return errtrace.Wrap(err)
		}
		cmd.log.Printf("Combined markdown book generated: %v", out)
	}

	return nil
}
