package zigsrc

import (
	"regexp"
	"slices"
	"strings"
)

// FunctionSignature is a public function declaration
// matched on a single source line.
type FunctionSignature struct {
	// Name of the function.
	Name string

	// Params is the raw text between the parentheses
	// of the parameter list.
	Params string

	// ReturnType is the raw text following the parameter list,
	// up to the opening brace.
	// It may be empty.
	ReturnType string

	// Doc holds the doc comment lines immediately above the declaration,
	// markers stripped, in source order.
	Doc []string

	// Line is the 1-based line number of the declaration.
	Line int
}

// TypeDefinition is a public type-defining constant declaration
// (struct, union, or enum) matched on a single source line.
type TypeDefinition struct {
	// Name of the type.
	Name string

	// Def is the raw definition text following the '=',
	// up to the opening brace.
	Def string

	// Doc holds the doc comment lines immediately above the declaration,
	// markers stripped, in source order.
	Doc []string

	// Line is the 1-based line number of the declaration.
	Line int
}

const (
	_funcPrefix  = "pub fn "
	_constPrefix = "pub const "
)

// Extraction is line-based and deliberately best-effort:
// declarations whose parameter list spans multiple lines
// do not match and are skipped without a report.
var (
	_funcPattern = regexp.MustCompile(`^pub fn\s+(\w+)\s*\((.*?)\)\s*(.*?)(?:\{|$)`)
	_typePattern = regexp.MustCompile(`^pub const\s+(\w+)\s*=\s*(.*?)(?:\{|$)`)
)

// _typeKeywords mark a 'pub const' line as a type definition.
var _typeKeywords = []string{"struct", "union", "enum"}

// ExtractFunctions scans src for 'pub fn' declarations
// and returns them in source order,
// each with the contiguous run of item doc comments directly above it.
func ExtractFunctions(src string) []FunctionSignature {
	lines := strings.Split(src, "\n")

	var funcs []FunctionSignature
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, _funcPrefix) {
			continue
		}

		m := _funcPattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}

		funcs = append(funcs, FunctionSignature{
			Name:       m[1],
			Params:     m[2],
			ReturnType: strings.TrimSpace(m[3]),
			Doc:        docsAbove(lines, i),
			Line:       i + 1,
		})
	}
	return funcs
}

// ExtractTypes scans src for 'pub const' declarations of structs,
// unions, and enums, and returns them in source order,
// each with the contiguous run of item doc comments directly above it.
func ExtractTypes(src string) []TypeDefinition {
	lines := strings.Split(src, "\n")

	var types []TypeDefinition
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, _constPrefix) {
			continue
		}
		if !containsTypeKeyword(trimmed) {
			continue
		}

		m := _typePattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}

		types = append(types, TypeDefinition{
			Name: m[1],
			Def:  strings.TrimSpace(m[2]),
			Doc:  docsAbove(lines, i),
			Line: i + 1,
		})
	}
	return types
}

func containsTypeKeyword(line string) bool {
	for _, kw := range _typeKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// docsAbove walks upward from the line at index i,
// collecting item doc comment lines until the first line that isn't one.
// Blank lines end the run.
// The result is in source order with markers stripped.
func docsAbove(lines []string, i int) []string {
	var doc []string
	for j := i - 1; j >= 0; j-- {
		trimmed := strings.TrimSpace(lines[j])
		if !strings.HasPrefix(trimmed, ItemDocMarker) {
			break
		}
		doc = append(doc, stripMarker(trimmed, ItemDocMarker))
	}
	slices.Reverse(doc)
	return doc
}
