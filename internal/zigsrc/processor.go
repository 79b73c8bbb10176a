package zigsrc

import (
	"log"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// FileRecord is the documentation extracted from one source file.
type FileRecord struct {
	// Path of the file, relative to the processor's root.
	Path string

	// ModuleDocs holds every doc comment line in the file,
	// markers stripped, in source order.
	ModuleDocs []string

	// Functions holds the public function declarations found in the file.
	Functions []FunctionSignature

	// Types holds the public type definitions found in the file.
	Types []TypeDefinition
}

// Empty reports whether the record carries no documentation at all.
// Empty records are skipped by the reference renderer.
func (r *FileRecord) Empty() bool {
	return len(r.ModuleDocs) == 0 && len(r.Functions) == 0 && len(r.Types) == 0
}

// Processor extracts documentation from individual source files.
type Processor struct {
	// Root is the directory that record paths are made relative to.
	Root string

	// Log receives warnings about files that could not be read.
	Log *log.Logger
}

// ProcessFile reads the source file at path
// and extracts its documentation into a FileRecord.
//
// Files that cannot be read or are not valid UTF-8
// produce a warning and an empty record;
// they never fail the surrounding batch.
func (p *Processor) ProcessFile(path string) FileRecord {
	bs, err := os.ReadFile(path)
	if err != nil {
		p.Log.Printf("Warning: could not read %v: %v", path, err)
		return FileRecord{}
	}
	if !utf8.Valid(bs) {
		p.Log.Printf("Warning: could not read %v as UTF-8", path)
		return FileRecord{}
	}

	relPath, err := filepath.Rel(p.Root, path)
	if err != nil {
		relPath = path
	}

	src := string(bs)
	return FileRecord{
		Path:       filepath.ToSlash(relPath),
		ModuleDocs: ExtractDocComments(src),
		Functions:  ExtractFunctions(src),
		Types:      ExtractTypes(src),
	}
}
