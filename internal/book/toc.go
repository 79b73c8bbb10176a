package book

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
)

// WriteTOC writes the standalone table of contents page
// for the given registry to w.
//
// One numbered entry is emitted per chapter,
// with its topics as an indented list.
func WriteTOC(w io.Writer, registry []Chapter) error {
	var sb strings.Builder
	sb.WriteString("# Table of Contents\n\n")
	fmt.Fprintf(&sb, "## %v\n\n", _bookTitle)

	for i, ch := range registry {
		fmt.Fprintf(&sb, "%d. **[%v](./%v)**\n", i+1, ch.Title, ch.Filename)
		for _, topic := range ch.Topics {
			fmt.Fprintf(&sb, "   - %v\n", topic)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Navigation\n\n")
	sb.WriteString("- [Home](./README.md)\n")
	sb.WriteString("- [Index](./index.md)\n")
	sb.WriteString("- [Glossary](./glossary.md)\n")

	_, err := io.WriteString(w, sb.String())
	return errtrace.Wrap(err)
}
