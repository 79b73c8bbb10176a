package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/zctor-project/zigdoc/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for zigdoc.
type params struct {
	version bool
	help    Help

	Debug flagvalue.FileSwitch

	SrcDir  string
	DocsDir string
}

// cliParser parses the command line arguments for zigdoc.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("zigdoc", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
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
		fmt.Fprintln(cmd.Stdout, "zigdoc", _version)
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

	if len(args) != 2 {
		fmt.Fprintln(cmd.Stderr, "Please provide a source directory and a docs directory.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	p.SrcDir = args[0]
	p.DocsDir = args[1]
	return p, nil
}
