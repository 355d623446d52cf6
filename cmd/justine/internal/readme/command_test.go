package readme

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadmeToStdout(t *testing.T) {
	cmd := NewReadmeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--output", "-"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "# Justine")
	assert.Contains(t, out.String(), "- **/random**")
}

func TestReadmeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	cmd := NewReadmeCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-o", path})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, path+" updated\n", out.String())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "- **/help**")
}
