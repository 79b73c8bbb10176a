package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zctor-project/zigdoc/internal/iotest"
)

func TestMainCmd_help(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-h"})
	assert.Zero(t, exitCode, "-h should have zero status code")
}

func TestMainCmd_version(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: &buff,
		Stderr: iotest.Writer(t),
	}).Run([]string{"-version"})
	assert.Zero(t, exitCode, "-version should have zero status code")

	assert.Contains(t, buff.String(), "zigdoc")
	assert.Contains(t, buff.String(), _version)
}

func TestMainCmd_unknownFlag(t *testing.T) {
	t.Parallel()

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"--this-flag-does-not-exist"})
	assert.NotZero(t, exitCode, "unknown flag should have non-zero status code")
}

func TestMainCmd_missingArguments(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &buff,
	}).Run(nil)
	assert.NotZero(t, exitCode)
	assert.Contains(t, buff.String(), "source directory")
}

func TestMainCmd_generate(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	docsDir := t.TempDir()

	require.NoError(t, os.WriteFile(
		filepath.Join(srcDir, "math.zig"),
		[]byte("//! Math helpers.\n\n/// Adds two numbers\npub fn add(a: i32, b: i32) i32 {\n}\n"),
		0o644))

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{srcDir, docsDir})
	require.Zero(t, exitCode)

	ref, err := os.ReadFile(filepath.Join(docsDir, "05-api-reference.md"))
	require.NoError(t, err)
	assert.Contains(t, string(ref), "## math.zig")
	assert.Contains(t, string(ref), "#### `add`")
	assert.Contains(t, string(ref), "pub fn add(a: i32, b: i32) i32")

	toc, err := os.ReadFile(filepath.Join(docsDir, "table-of-contents.md"))
	require.NoError(t, err)
	assert.Contains(t, string(toc), "# Table of Contents")
}

func TestMainCmd_missingSrcDir(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: &buff,
	}).Run([]string{
		filepath.Join(t.TempDir(), "does-not-exist"),
		t.TempDir(),
	})
	assert.NotZero(t, exitCode)
	assert.Contains(t, buff.String(), "zigdoc:")
}

func TestMainCmd_debugLogToFile(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	docsDir := t.TempDir()
	logFile := filepath.Join(t.TempDir(), "debug.log")

	require.NoError(t, os.WriteFile(
		filepath.Join(srcDir, "main.zig"), []byte("//! Entry point.\n"), 0o644))

	exitCode := (&mainCmd{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Run([]string{"-debug=" + logFile, srcDir, docsDir})
	require.Zero(t, exitCode)

	log, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(log), "main.zig")
}
