// Package html renders the assembled markdown book
// into a standalone HTML page.
package html

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sync"

	"braces.dev/errtrace"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// _chromaStyle is the chroma style used for highlighted code blocks.
const _chromaStyle = "github"

var (
	//go:embed tmpl/page.html
	_tmplFS embed.FS

	//go:embed static/style.css
	_styleCSS string

	_pageTmpl = template.Must(
		template.New("page.html").ParseFS(_tmplFS, "tmpl/page.html"),
	)
)

// Renderer converts markdown documents into complete HTML pages
// with a fixed embedded stylesheet.
//
// The zero value is ready to use.
type Renderer struct {
	// Title of the generated page.
	//
	// Defaults to "Documentation".
	Title string

	once sync.Once
	md   goldmark.Markdown
}

func (r *Renderer) init() {
	r.once.Do(func() {
		r.md = goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(_chromaStyle),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
			goldmark.WithParserOptions(
				// Heading IDs are needed for the book's TOC links,
				// although the TOC anchor scheme predates this renderer
				// and the two may disagree.
				parser.WithAutoHeadingID(),
			),
		)
	})
}

type pageData struct {
	Title string
	Style template.CSS
	Body  template.HTML
}

// Render converts the markdown document src into HTML
// and writes the complete page to w.
//
// If conversion fails, an error is returned
// and nothing is written to w.
func (r *Renderer) Render(w io.Writer, src []byte) error {
	r.init()

	var body bytes.Buffer
	if err := r.md.Convert(src, &body); err != nil {
		return errtrace.Errorf("convert markdown: %w", err)
	}

	css, err := highlightCSS()
	if err != nil {
		return err
	}

	title := r.Title
	if title == "" {
		title = "Documentation"
	}

	var page bytes.Buffer
	err = _pageTmpl.Execute(&page, pageData{
		Title: title,
		Style: template.CSS(_styleCSS + "\n" + css),
		Body:  template.HTML(body.String()),
	})
	if err != nil {
		return errtrace.Errorf("render page: %w", err)
	}

	_, err = w.Write(page.Bytes())
	return errtrace.Wrap(err)
}

// highlightCSS builds the chroma class definitions
// matching the highlighting extension's formatter options.
func highlightCSS() (string, error) {
	var buff bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buff, styles.Get(_chromaStyle)); err != nil {
		return "", errtrace.Errorf("write highlight css: %w", err)
	}
	return buff.String(), nil
}
