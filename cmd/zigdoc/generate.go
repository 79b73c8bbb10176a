package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/zctor-project/zigdoc/internal/apiref"
	"github.com/zctor-project/zigdoc/internal/book"
	"github.com/zctor-project/zigdoc/internal/errdefer"
	"github.com/zctor-project/zigdoc/internal/zigsrc"
)

// Generated file names, relative to the docs directory.
const (
	_apiRefFile = "05-api-reference.md"
	_tocFile    = "table-of-contents.md"
)

// Finder searches for source files under a root directory.
type Finder interface {
	FindSources(root string) ([]string, error)
}

var _ Finder = (*zigsrc.Finder)(nil)

// Processor extracts the documentation of a single source file.
type Processor interface {
	ProcessFile(path string) zigsrc.FileRecord
}

var _ Processor = (*zigsrc.Processor)(nil)

// Renderer renders extracted records into a markdown reference.
type Renderer interface {
	Render(io.Writer, []zigsrc.FileRecord) error
}

var _ Renderer = (*apiref.Renderer)(nil)

// Generator generates the API reference for a Zig source tree.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log       *log.Logger
	Finder    Finder
	Processor Processor
	Renderer  Renderer
}

// Generate extracts documentation from srcDir
// and writes the generated pages into docsDir.
func (g *Generator) Generate(srcDir, docsDir string) error {
	g.Log.Printf("Scanning source files...")
	paths, err := g.Finder.FindSources(srcDir)
	if err != nil {
		return errtrace.Wrap(err)
	}

	records := make([]zigsrc.FileRecord, 0, len(paths))
	for _, path := range paths {
		records = append(records, g.Processor.ProcessFile(path))
	}
	g.Log.Printf("Found %v source files with documentation", len(records))

	g.Log.Printf("Generating API reference...")
	if err := g.writeAPIReference(docsDir, records); err != nil {
		return err
	}

	g.Log.Printf("Generating table of contents...")
	if err := g.writeTOC(docsDir); err != nil {
		return err
	}

	g.Log.Printf("Documentation generated in %v", docsDir)
	g.Log.Printf("- API Reference: %v", filepath.Join(docsDir, _apiRefFile))
	g.Log.Printf("- Table of Contents: %v", filepath.Join(docsDir, _tocFile))
	return nil
}

func (g *Generator) writeAPIReference(docsDir string, records []zigsrc.FileRecord) (err error) {
	f, err := os.Create(filepath.Join(docsDir, _apiRefFile))
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return g.Renderer.Render(f, records)
}

func (g *Generator) writeTOC(docsDir string) (err error) {
	f, err := os.Create(filepath.Join(docsDir, _tocFile))
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return book.WriteTOC(f, book.DefaultRegistry())
}
