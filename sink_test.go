package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goWriter(file, body string, imports ...string) writer {
	return &basicWriterForGo{
		basicWriter: basicWriter{
			name:     "test",
			language: "go",
			file:     file,
			write: func(wr io.Writer) error {
				_, err := fmt.Fprint(wr, body)
				return err
			},
		},
		packageName: "sample",
		imports:     imports,
	}
}

func TestExecuteWriters(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "nested", "deeper", "a.go")
	b := filepath.Join(dir, "b.txt")

	writers := []writer{
		goWriter(a, "\nfunc A() time.Time { return time.Time{} }\n", "time"),
		&basicWriter{name: "text", language: "text", file: b, write: templateWriter("text", "hello {{.}}\n", "world")},
	}

	files, err := executeWriters(testLogger(), writers, writeOptions{DisableFormatting: true})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)

	got, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, generatedNotice+"\n\npackage sample\n\nimport (\n\t\"time\"\n)\n\nfunc A() time.Time { return time.Time{} }\n", string(got))

	got, err = os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(got))
}

func TestExecuteWriterOverwrites(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.go")
	writeFile(t, file, "old content that is much longer than the new content")

	_, err := executeWriters(testLogger(), []writer{goWriter(file, "")}, writeOptions{DisableFormatting: true})
	require.NoError(t, err)

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, generatedNotice+"\n\npackage sample\n", string(got))
}

func TestExecuteWritersDryRun(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "a.go")

	files, err := executeWriters(testLogger(), []writer{goWriter(file, "\nvar X = 1\n")}, writeOptions{Dry: true, DisableFormatting: true})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)

	_, err = os.Stat(filepath.Dir(file))
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteWritersStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.go")
	third := filepath.Join(dir, "third.go")

	failing := &basicWriter{name: "broken", language: "text", file: filepath.Join(dir, "second.txt"), write: func(io.Writer) error {
		return errors.New("boom")
	}}

	files, err := executeWriters(testLogger(), []writer{goWriter(first, ""), failing, goWriter(third, "")}, writeOptions{DisableFormatting: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, []string{first}, files)

	_, err = os.Stat(first)
	assert.NoError(t, err)
	_, err = os.Stat(third)
	assert.True(t, os.IsNotExist(err))
}

func TestLogTime(t *testing.T) {
	calls := 0
	err := logTime(testLogger(), "op", func() error {
		calls++
		return errors.New("failed")
	})

	assert.Equal(t, 1, calls)
	assert.EqualError(t, err, "failed")
}

func TestImportSet(t *testing.T) {
	var s importSet
	s.add("time", "", "fmt")
	s.add("time", "context")

	assert.Equal(t, []string{"time", "fmt", "context"}, s.list())
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "fallback", Default("fallback", ""))
	assert.Equal(t, "value", Default("fallback", "value"))
}
