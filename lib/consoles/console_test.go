package consoles_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/lintsel/lib/consoles"
)

func TestWriterConsolePrefixes(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := consoles.NewWriterConsole(out, false)

	console.PushPrefix("%v: ", "repo")
	console.Printf("Importing %v...\n", "files")
	assert.Equal(t, "repo: x", console.Prepare("x"))
	console.PopPrefix()
	console.Printf("done\n")
	console.Debugf("hidden\n")

	assert.Contains(t, out.String(), "repo: Importing files...")
	assert.Contains(t, out.String(), "done")
	assert.NotContains(t, out.String(), "hidden")
}

func TestWriterConsoleVerbose(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	console := consoles.NewWriterConsole(out, true)

	console.Debugf("shown\n")

	assert.Contains(t, out.String(), "shown")
}

func TestMemoryConsole(t *testing.T) {
	t.Parallel()

	console := consoles.NewMemoryConsole()

	console.Printf("a\n")
	console.PushPrefix("  ")
	console.Printf("b")
	console.Warnf("c\n")
	console.PopPrefix()

	assert.Equal(t, []string{"a", "  b"}, console.Lines)
	assert.Equal(t, []string{"  c"}, console.Warnings)
	assert.Equal(t, "a\n  b", console.Output())
}
