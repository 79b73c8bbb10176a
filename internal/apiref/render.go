// Package apiref renders extracted documentation records
// into a single markdown API reference document.
package apiref

import (
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/zctor-project/zigdoc/internal/sliceutil"
	"github.com/zctor-project/zigdoc/internal/zigsrc"
)

const _header = "# API Reference\n\n" +
	"This is the complete API reference for zctor, " +
	"automatically generated from source code.\n\n"

// Renderer turns a collection of file records into one markdown document.
//
// Rendering is deterministic:
// the same records always produce byte-identical output.
type Renderer struct{}

// Render writes the reference for the given records to w,
// in the order they are supplied.
//
// Records without any documentation are skipped entirely.
func (r *Renderer) Render(w io.Writer, records []zigsrc.FileRecord) error {
	records = sliceutil.RemoveFunc(records, func(rec zigsrc.FileRecord) bool {
		return rec.Empty()
	})

	var sb strings.Builder
	sb.WriteString(_header)
	for _, rec := range records {
		renderRecord(&sb, rec)
	}

	_, err := io.WriteString(w, sb.String())
	return errtrace.Wrap(err)
}

func renderRecord(sb *strings.Builder, rec zigsrc.FileRecord) {
	fmt.Fprintf(sb, "## %v\n\n", rec.Path)

	if len(rec.ModuleDocs) > 0 {
		sb.WriteString("### Module Documentation\n\n")
		for _, doc := range rec.ModuleDocs {
			if doc != "" {
				sb.WriteString(doc)
				sb.WriteString("\n\n")
			}
		}
	}

	if len(rec.Types) > 0 {
		sb.WriteString("### Types\n\n")
		for _, typ := range rec.Types {
			renderType(sb, typ)
		}
	}

	if len(rec.Functions) > 0 {
		sb.WriteString("### Functions\n\n")
		for _, fn := range rec.Functions {
			renderFunction(sb, fn)
		}
	}

	sb.WriteString("---\n\n")
}

func renderType(sb *strings.Builder, typ zigsrc.TypeDefinition) {
	fmt.Fprintf(sb, "#### `%v`\n\n", typ.Name)
	if len(typ.Doc) > 0 {
		sb.WriteString(strings.Join(typ.Doc, "\n"))
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(sb, "```zig\n%v\n```\n\n", typ.Def)
}

func renderFunction(sb *strings.Builder, fn zigsrc.FunctionSignature) {
	fmt.Fprintf(sb, "#### `%v`\n\n", fn.Name)
	if len(fn.Doc) > 0 {
		sb.WriteString(strings.Join(fn.Doc, "\n"))
		sb.WriteString("\n\n")
	}
	fmt.Fprintf(sb, "```zig\n%v\n```\n\n", Signature(fn))
}

// Signature reconstructs the one-line source form of a function declaration.
func Signature(fn zigsrc.FunctionSignature) string {
	sig := fmt.Sprintf("pub fn %v(%v)", fn.Name, fn.Params)
	if fn.ReturnType != "" {
		sig += " " + fn.ReturnType
	}
	return sig
}
