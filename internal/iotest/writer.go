// Package iotest provides IO utilities for testing.
package iotest

import (
	"bytes"
	"io"
	"testing"
)

// Writer builds an io.Writer that writes to the given testing.TB,
// one line at a time.
func Writer(t testing.TB) io.Writer {
	return &writer{t: t}
}

type writer struct {
	t testing.TB

	// Holds text before the next newline
	// in case of partial writes.
	buff bytes.Buffer
}

func (w *writer) Write(bs []byte) (int, error) {
	total := len(bs)

	// t.Logf adds its own newline,
	// so feed it exactly one line per call.
	for {
		idx := bytes.IndexByte(bs, '\n')
		if idx < 0 {
			w.buff.Write(bs)
			break
		}

		w.buff.Write(bs[:idx])
		w.t.Logf("%s", w.buff.Bytes())
		w.buff.Reset()
		bs = bs[idx+1:]
	}

	return total, nil
}
