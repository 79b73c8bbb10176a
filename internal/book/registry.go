// Package book assembles the ordered chapters of the documentation
// into a single combined document.
package book

import "slices"

// Chapter is one entry in the book's chapter registry.
type Chapter struct {
	// Filename of the chapter file inside the docs directory.
	Filename string

	// Title used for the chapter heading
	// and the table of contents.
	Title string

	// Topics listed under the chapter
	// on the standalone table of contents page.
	Topics []string
}

// The registry is fixed: chapter order and titles do not depend on
// which files actually exist on disk,
// so ordinals stay stable across runs.
var _registry = []Chapter{
	{Filename: "README.md", Title: "Introduction to the Documentation"},
	{
		Filename: "01-introduction.md",
		Title:    "Introduction",
		Topics: []string{
			"What is the Actor Model?",
			"Why zctor?",
			"Key Features",
			"Use Cases",
			"Architecture Overview",
		},
	},
	{
		Filename: "02-installation.md",
		Title:    "Installation",
		Topics: []string{
			"Requirements",
			"Installation Methods",
			"Verifying Installation",
			"Development Setup",
			"Troubleshooting",
		},
	},
	{
		Filename: "03-quick-start.md",
		Title:    "Quick Start",
		Topics: []string{
			"Your First Actor",
			"Adding State",
			"Multiple Actors",
			"Common Patterns",
		},
	},
	{
		Filename: "04-architecture.md",
		Title:    "Architecture",
		Topics: []string{
			"Core Components",
			"Message Flow",
			"Threading Model",
			"Memory Management",
		},
	},
	{
		Filename: "05-api-reference.md",
		Title:    "API Reference",
		Topics: []string{
			"ActorEngine",
			"Actor(T)",
			"ActorThread",
			"Context",
			"Generated API Documentation",
		},
	},
	{
		Filename: "06-examples.md",
		Title:    "Examples",
		Topics: []string{
			"Basic Examples",
			"Real-world Use Cases",
			"Performance Examples",
			"Integration Examples",
		},
	},
	{
		Filename: "07-best-practices.md",
		Title:    "Best Practices",
		Topics: []string{
			"Design Patterns",
			"Performance Tips",
			"Error Handling",
			"Testing Strategies",
		},
	},
	{
		Filename: "08-advanced-topics.md",
		Title:    "Advanced Topics",
		Topics: []string{
			"Custom Allocators",
			"Supervisors",
			"Distributed Actors",
			"Performance Tuning",
		},
	},
	{
		Filename: "09-contributing.md",
		Title:    "Contributing",
		Topics: []string{
			"Development Environment",
			"Code Style",
			"Testing",
			"Documentation",
		},
	},
	{
		Filename: "10-appendix.md",
		Title:    "Appendix",
		Topics: []string{
			"Glossary",
			"References",
			"License Information",
		},
	},
}

// DefaultRegistry returns the fixed chapter registry of the book.
//
// The caller owns the returned slice
// and may append to it without affecting other callers.
func DefaultRegistry() []Chapter {
	return slices.Clone(_registry)
}
