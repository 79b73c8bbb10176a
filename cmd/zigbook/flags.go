package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/zctor-project/zigdoc/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for zigbook.
type params struct {
	version bool
	help    Help

	Format   format
	Output   string
	List     bool
	Validate bool
	Chapters []chapterEntry

	DocsDir string
}

// cliParser parses the command line arguments for zigbook.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("zigbook", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	p := params{Format: formatMarkdown}

	// Output:
	flag.Var(&p.Format, "format", "")
	flag.StringVar(&p.Output, "o", "", "")
	flag.StringVar(&p.Output, "output", "", "")
	flag.Var(flagvalue.ListOf(&p.Chapters), "chapter", "")

	// Reporting modes:
	flag.BoolVar(&p.List, "list", false, "")
	flag.BoolVar(&p.Validate, "validate", false, "")

	// Program-level:
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	if err := flag.Parse(args); err != nil {
		return nil, err
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "zigbook", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if len(args) != 1 {
		fmt.Fprintln(cmd.Stderr, "Please provide a docs directory.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	p.DocsDir = args[0]
	return p, nil
}

// format selects the output format of the assembled book.
type format string

const (
	formatMarkdown format = "markdown"
	formatHTML     format = "html"
)

var _ flag.Getter = (*format)(nil)

// Get returns the value of this flag.
func (f *format) Get() any { return *f }

// String returns the name of the format.
func (f *format) String() string { return string(*f) }

// Set receives a command line value.
// Only "markdown" and "html" are accepted.
func (f *format) Set(s string) error {
	switch format(s) {
	case formatMarkdown, formatHTML:
		*f = format(s)
		return nil
	default:
		return fmt.Errorf("expected 'markdown' or 'html', got %q", s)
	}
}

// defaultOutput is the output file used
// when no explicit -o was given.
func (f format) defaultOutput() string {
	if f == formatHTML {
		return "zctor-book.html"
	}
	return "zctor-book.md"
}

// chapterEntry is a 'file=Title' argument to -chapter,
// appending one chapter to the book's fixed registry.
type chapterEntry struct {
	Filename string
	Title    string
}

var _ flag.Getter = (*chapterEntry)(nil)

// Get returns this entry.
func (c *chapterEntry) Get() any { return c }

// String returns the entry in its command line form.
func (c *chapterEntry) String() string {
	return fmt.Sprintf("%s=%s", c.Filename, c.Title)
}

// Set receives a single command line value.
func (c *chapterEntry) Set(s string) error {
	idx := strings.IndexRune(s, '=')
	if idx < 0 {
		return fmt.Errorf("expected form 'file=title'")
	}

	c.Filename = s[:idx]
	c.Title = s[idx+1:]
	return nil
}
