package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zctor-project/zigdoc/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{"docs"},
			want: params{
				Format:  formatMarkdown,
				DocsDir: "docs",
			},
		},
		{
			desc: "html format with output",
			give: []string{"-format", "html", "-o", "book.html", "docs"},
			want: params{
				Format:  formatHTML,
				Output:  "book.html",
				DocsDir: "docs",
			},
		},
		{
			desc: "list",
			give: []string{"-list", "docs"},
			want: params{
				Format:  formatMarkdown,
				List:    true,
				DocsDir: "docs",
			},
		},
		{
			desc: "validate",
			give: []string{"-validate", "docs"},
			want: params{
				Format:   formatMarkdown,
				Validate: true,
				DocsDir:  "docs",
			},
		},
		{
			desc: "extra chapters",
			give: []string{
				"-chapter", "99-faq.md=FAQ",
				"-chapter=extras.md=Extra Material",
				"docs",
			},
			want: params{
				Format: formatMarkdown,
				Chapters: []chapterEntry{
					{Filename: "99-faq.md", Title: "FAQ"},
					{Filename: "extras.md", Title: "Extra Material"},
				},
				DocsDir: "docs",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
	}{
		{desc: "no arguments", give: []string{}},
		{desc: "too many arguments", give: []string{"docs", "extra"}},
		{desc: "unknown format", give: []string{"-format", "pdf", "docs"}},
		{desc: "bad chapter form", give: []string{"-chapter", "no-title.md", "docs"}},
		{desc: "unknown flag", give: []string{"-unknown", "docs"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			assert.Error(t, err)
		})
	}
}

func TestFormat_defaultOutput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "zctor-book.md", formatMarkdown.defaultOutput())
	assert.Equal(t, "zctor-book.html", formatHTML.defaultOutput())
}
