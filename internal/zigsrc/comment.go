package zigsrc

import "strings"

// Doc comment markers recognized in Zig source.
const (
	// ModuleDocMarker starts a module-level doc comment line.
	ModuleDocMarker = "//!"

	// ItemDocMarker starts a doc comment line
	// attached to the following declaration.
	ItemDocMarker = "///"
)

// ExtractDocComments returns all doc comment lines found in src,
// in source order, with their markers stripped.
//
// Both module-level ("//!") and item-level ("///") comments are included.
// Lines that are not doc comments are ignored,
// so a file without any doc comments yields an empty result.
func ExtractDocComments(src string) []string {
	var docs []string
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, ModuleDocMarker):
			docs = append(docs, stripMarker(trimmed, ModuleDocMarker))
		case strings.HasPrefix(trimmed, ItemDocMarker):
			docs = append(docs, stripMarker(trimmed, ItemDocMarker))
		}
	}
	return docs
}

// stripMarker drops the leading marker from a doc comment line
// and trims the surrounding whitespace of what remains.
func stripMarker(line, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, marker))
}
