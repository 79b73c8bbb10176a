package zigsrc

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
)

// _sourceExt is the extension of files the finder looks for.
const _sourceExt = ".zig"

// Finder searches a directory tree for Zig source files.
//
// The zero value of this is ready to use.
type Finder struct {
	// Logger to write debug messages to.
	//
	// Use nil to disable debug logging.
	DebugLog *log.Logger
}

// FindSources walks the tree rooted at root
// and returns the paths of all Zig source files in it,
// in lexicographic walk order.
func (f *Finder) FindSources(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, _sourceExt) {
			return nil
		}
		if f.DebugLog != nil {
			f.DebugLog.Printf("Found source file %v", path)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return paths, nil
}
