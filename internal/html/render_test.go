package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRenderer(t *testing.T) {
	t.Parallel()

	src := strings.Join([]string{
		"# zctor Documentation Book",
		"",
		"## Table of Contents",
		"",
		"Some *text*.",
		"",
		"```zig",
		"pub fn add(a: i32, b: i32) i32",
		"```",
		"",
		"| a | b |",
		"|---|---|",
		"| 1 | 2 |",
	}, "\n")

	var buff bytes.Buffer
	r := Renderer{Title: "zctor Documentation Book"}
	require.NoError(t, r.Render(&buff, []byte(src)))

	doc, err := html.Parse(&buff)
	require.NoError(t, err)

	title := cascadia.MustCompile("title").MatchFirst(doc)
	require.NotNil(t, title, "page must have a title")
	assert.Equal(t, "zctor Documentation Book", allText(title))

	h1 := cascadia.MustCompile("h1").MatchFirst(doc)
	require.NotNil(t, h1)
	assert.Equal(t, "zctor Documentation Book", allText(h1))

	// Auto heading IDs give the TOC links something to point at.
	assert.NotNil(t,
		cascadia.MustCompile("#table-of-contents").MatchFirst(doc),
		"headings must carry generated IDs")

	assert.NotNil(t,
		cascadia.MustCompile("table").MatchFirst(doc),
		"GFM tables must render")

	style := cascadia.MustCompile("style").MatchFirst(doc)
	require.NotNil(t, style, "stylesheet must be embedded")
	assert.Contains(t, allText(style), "font-family")
	assert.Contains(t, allText(style), ".chroma",
		"highlight classes must be part of the stylesheet")
}

func TestRenderer_defaultTitle(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	var r Renderer
	require.NoError(t, r.Render(&buff, []byte("hello")))

	doc, err := html.Parse(&buff)
	require.NoError(t, err)

	title := cascadia.MustCompile("title").MatchFirst(doc)
	require.NotNil(t, title)
	assert.Equal(t, "Documentation", allText(title))
}

func TestRenderer_escapesTitle(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	r := Renderer{Title: "<script>alert(1)</script>"}
	require.NoError(t, r.Render(&buff, []byte("hello")))

	assert.NotContains(t, buff.String(), "<script>alert(1)</script>")
}

func allText(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.TrimSpace(sb.String())
}
