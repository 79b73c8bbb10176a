package book

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/zctor-project/zigdoc/internal/frontmatter"
)

const (
	_bookTitle    = "zctor Documentation Book"
	_bookSubtitle = "A comprehensive guide to the zctor actor framework for Zig."

	_timestampLayout = "2006-01-02 15:04:05"
)

// Assembler combines the chapters of the registry
// into one markdown document.
type Assembler struct {
	// Dir is the docs directory holding the chapter files.
	Dir string

	// Registry lists the chapters of the book in order.
	Registry []Chapter

	// Log receives warnings about unreadable chapter files.
	Log *log.Logger

	// Now reports the current time for the generation timestamp.
	//
	// Defaults to [time.Now].
	Now func() time.Time
}

// Assemble writes the combined book to w.
//
// The output always contains one section per registry chapter,
// in registry order.
// A missing chapter file degrades to a placeholder section;
// it never fails the assembly.
func (a *Assembler) Assemble(w io.Writer) error {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %v\n\n", _bookTitle)
	fmt.Fprintf(&sb, "%v\n\n", _bookSubtitle)
	fmt.Fprintf(&sb, "*Generated on %v*\n\n", now().Format(_timestampLayout))
	sb.WriteString("---\n\n")

	sb.WriteString("## Table of Contents\n\n")
	for i, ch := range a.Registry {
		fmt.Fprintf(&sb, "%d. [%v](#%v)\n", i+1, ch.Title, anchor(ch.Title))
	}
	sb.WriteString("\n---\n\n")

	for i, ch := range a.Registry {
		a.renderChapter(&sb, i+1, ch)
	}

	_, err := io.WriteString(w, sb.String())
	return errtrace.Wrap(err)
}

func (a *Assembler) renderChapter(sb *strings.Builder, ordinal int, ch Chapter) {
	bs, err := os.ReadFile(filepath.Join(a.Dir, ch.Filename))
	if err != nil {
		if a.Log != nil && !os.IsNotExist(err) {
			a.Log.Printf("Warning: could not read chapter %v: %v", ch.Filename, err)
		}
		fmt.Fprintf(sb, "# %d. %v\n\n*Chapter not found: %v*\n\n---\n\n",
			ordinal, ch.Title, ch.Filename)
		return
	}

	fmt.Fprintf(sb, "# %d. %v\n\n", ordinal, ch.Title)
	sb.WriteString(chapterBody(bs))
	sb.WriteString("\n\n---\n\n")
}

// chapterBody prepares a chapter file's content for inclusion in the book:
// YAML frontmatter is stripped,
// and the chapter's own first heading line is dropped
// so it doesn't compete with the generated numbered heading.
func chapterBody(bs []byte) string {
	_, body, _ := frontmatter.Split(bs)

	content := string(body)
	if lines := strings.Split(content, "\n"); len(lines) > 0 && strings.HasPrefix(lines[0], "#") {
		content = strings.Join(lines[1:], "\n")
	}
	return content
}

// anchor derives the table of contents link for a chapter title:
// lowercased, spaces as hyphens, parentheses dropped.
//
// This intentionally mirrors the historical anchor scheme.
// It is not guaranteed to match the heading IDs
// produced by the HTML renderer.
var _anchorReplacer = strings.NewReplacer(" ", "-", "(", "", ")", "")

func anchor(title string) string {
	return _anchorReplacer.Replace(strings.ToLower(title))
}
