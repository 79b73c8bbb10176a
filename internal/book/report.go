package book

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"github.com/zctor-project/zigdoc/internal/frontmatter"
)

// List writes a one-line existence report per registry chapter to w.
func (a *Assembler) List(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("Available chapters:\n")
	for i, ch := range a.Registry {
		status := "✗"
		if info, err := os.Stat(filepath.Join(a.Dir, ch.Filename)); err == nil && info.Mode().IsRegular() {
			status = "✓"
		}
		fmt.Fprintf(&sb, "  %2d. %v %v (%v)\n", i+1, status, ch.Title, ch.Filename)
	}

	_, err := io.WriteString(w, sb.String())
	return errtrace.Wrap(err)
}

// Validate checks that every registry chapter exists and is readable,
// writing a human-readable report to w.
// Empty chapters and invalid frontmatter are warnings,
// not validation failures.
//
// The returned bool reports whether validation passed.
func (a *Assembler) Validate(w io.Writer) (bool, error) {
	var sb strings.Builder
	sb.WriteString("Validating chapters...\n")

	allValid := true
	for _, ch := range a.Registry {
		path := filepath.Join(a.Dir, ch.Filename)

		info, err := os.Stat(path)
		switch {
		case err != nil:
			fmt.Fprintf(&sb, "  ✗ Missing: %v (%v)\n", ch.Title, ch.Filename)
			allValid = false
			continue
		case !info.Mode().IsRegular():
			fmt.Fprintf(&sb, "  ✗ Not a file: %v (%v)\n", ch.Title, ch.Filename)
			allValid = false
			continue
		}

		bs, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(&sb, "  ✗ Error reading: %v (%v) - %v\n", ch.Title, ch.Filename, err)
			allValid = false
			continue
		}

		if meta, _, had := frontmatter.Split(bs); had {
			if _, err := frontmatter.Parse(meta); err != nil {
				fmt.Fprintf(&sb, "  ⚠ Invalid frontmatter: %v (%v)\n", ch.Title, ch.Filename)
			}
		}

		if len(strings.TrimSpace(string(bs))) == 0 {
			fmt.Fprintf(&sb, "  ⚠ Empty: %v (%v)\n", ch.Title, ch.Filename)
		} else {
			fmt.Fprintf(&sb, "  ✓ Valid: %v (%v) - %v chars\n",
				ch.Title, ch.Filename, utf8.RuneCount(bs))
		}
	}

	if allValid {
		sb.WriteString("\nValidation passed\n")
	} else {
		sb.WriteString("\nValidation failed\n")
	}

	_, err := io.WriteString(w, sb.String())
	return allValid, errtrace.Wrap(err)
}
