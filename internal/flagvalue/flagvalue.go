// Package flagvalue provides flag.Value implementations
// shared by the command line tools.
package flagvalue

import (
	"flag"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}

// List is a generic flag.Getter
// that accepts zero or more instances of the same flag
// and combines them into a list.
type List[T any, PT Getter[T]] []T

// ListOf wraps a slice of flag.Getter objects
// to accept zero or more instances of that flag.
//
//	flag.Var(flagvalue.ListOf(&chapters), "chapter", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far
// as a slice of the underlying type.
func (l *List[T, PT]) Get() any { return []T(*l) }

// String returns a semicolon separated list of the values in this list.
func (l *List[T, PT]) String() string {
	var sb strings.Builder
	for i, v := range *l {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// Set receives a single flag argument into this list.
func (l *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*l = append(*l, v)
	return nil
}
