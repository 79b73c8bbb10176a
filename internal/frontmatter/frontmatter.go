// Package frontmatter splits YAML frontmatter from markdown documents.
package frontmatter

import (
	"bytes"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

var _delim = []byte("---\n")

// Meta holds the fields recognized in chapter frontmatter.
// Unknown fields are ignored.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Split separates '---' delimited YAML frontmatter from the markdown body.
//
// If content does not start with a frontmatter block,
// had is false and body is the full input.
// An opening delimiter without a closing one
// is not treated as frontmatter.
func Split(content []byte) (meta []byte, body []byte, had bool) {
	if !bytes.HasPrefix(content, _delim) {
		return nil, content, false
	}

	rest := content[len(_delim):]
	idx := bytes.Index(rest, _delim)
	if idx < 0 {
		return nil, content, false
	}

	return rest[:idx], rest[idx+len(_delim):], true
}

// Parse decodes the YAML frontmatter returned by [Split].
func Parse(meta []byte) (Meta, error) {
	var m Meta
	if err := yaml.Unmarshal(meta, &m); err != nil {
		return Meta{}, errtrace.Wrap(err)
	}
	return m, nil
}
