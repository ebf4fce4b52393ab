package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestDiagramFromText(t *testing.T) {
	d, err := diagramFromText(boxText, 10)
	require.NoError(t, err)
	assert.Equal(t, boxText, d.OutputText(nil))

	w, h := d.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
}

func TestNormalizeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  ++++   \n  +  +\n  ++++\n\n"), 0644))

	out, err := runCLI(t, "normalize", path)
	require.NoError(t, err)
	assert.Equal(t, boxText, out)
}

func TestNormalizeCommandWritesInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("+++>\n"), 0644))

	_, err := runCLI(t, "normalize", "-w", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "+-->\n", string(data))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "flow.txt")
	require.NoError(t, os.WriteFile(in, []byte(boxText), 0644))

	out, err := runCLI(t, "render", in)
	require.NoError(t, err)
	assert.Contains(t, out, "flow.png")
	assert.FileExists(t, filepath.Join(dir, "flow.png"))

	custom := filepath.Join(dir, "custom.png")
	_, err = runCLI(t, "render", in, "-o", custom)
	require.NoError(t, err)
	assert.FileExists(t, custom)
}

func TestRenderCommandMissingFile(t *testing.T) {
	_, err := runCLI(t, "render", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
