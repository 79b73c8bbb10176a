// Package zigsrc is the part of the pipeline of zigdoc
// responsible for finding Zig source files
// and extracting documentation from them.
//
// It provides a [Finder] to search for source files under a root directory,
// and a [Processor] to turn a single file into a [FileRecord].
// FileRecords are plain values and carry no references to the file system,
// so many of them can be in memory at once.
package zigsrc
