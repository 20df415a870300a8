package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMergeCommand(t *testing.T) {
	tmpDir := t.TempDir()
	pathA := writeLog(t, tmpDir, "a.log",
		"1327421400 slp RETRO [2012.01.24 10:30:00 Tue]\n"+
			"1327428600 lunch [2012.01.24 12:30:00 Tue]\n")
	pathB := writeLog(t, tmpDir, "b.log",
		"1327421400 work code [2012.01.24 10:30:00 Tue]\n"+
			"1327425000 email [2012.01.24 11:30:00 Tue]\n")
	outPath := filepath.Join(tmpDir, "merged.log")

	stdout := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{pathA, pathB, outPath})

	require.NoError(t, cmd.Execute())

	// Success is silent on stdout.
	assert.Empty(t, stdout.String())

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	want := "1327421400 work code [2012.01.24 10:30:00 Tue]\n" +
		"1327425000 email [2012.01.24 11:30:00 Tue]\n" +
		"1327428600 lunch [2012.01.24 12:30:00 Tue]\n"
	assert.Equal(t, want, string(got))
}

func TestMergeCommandMissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	pathB := writeLog(t, tmpDir, "b.log", "1327421400 work a b c\n")
	missing := filepath.Join(tmpDir, "nope.log")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{missing, pathB, filepath.Join(tmpDir, "out.log")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), missing)
}

func TestMergeCommandUnwritableOutput(t *testing.T) {
	tmpDir := t.TempDir()
	pathA := writeLog(t, tmpDir, "a.log", "1327421400 work a b c\n")
	pathB := writeLog(t, tmpDir, "b.log", "1327421400 work a b c\n")
	badOut := filepath.Join(tmpDir, "no-such-dir", "out.log")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{pathA, pathB, badOut})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), badOut)
}

func TestMergeCommandWrongArgCount(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only-one.log"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestMergeCommandInvalidFormat(t *testing.T) {
	tmpDir := t.TempDir()
	pathA := writeLog(t, tmpDir, "a.log", "")
	pathB := writeLog(t, tmpDir, "b.log", "")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", pathA, pathB, filepath.Join(tmpDir, "out.log")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
