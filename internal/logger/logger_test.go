package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true

	prevOut, prevErr := stdout, stderr
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)

	t.Cleanup(func() {
		SetOutput(prevOut, prevErr)
		color.NoColor = noColor
		_ = Close()
		Init(Options{})
	})
	return &out, &errOut
}

func TestLevelsGoToTheirStreams(t *testing.T) {
	out, errOut := captureOutput(t)
	Init(Options{})

	Info("[INFO] switching to %s\n", "tv")
	Warn("[WARN] command failed\n")
	Error("[ERROR] state file broken\n")

	assert.Equal(t, "[INFO] switching to tv\n", out.String())
	assert.Equal(t, "[WARN] command failed\n[ERROR] state file broken\n", errOut.String())
}

func TestDebugIsGated(t *testing.T) {
	out, _ := captureOutput(t)

	Init(Options{Debug: false})
	Debug("[DEBUG] hidden\n")
	assert.Empty(t, out.String())

	Init(Options{Debug: true})
	Debug("[DEBUG] shown\n")
	assert.Equal(t, "[DEBUG] shown\n", out.String())
}

func TestFileReceivesPlainLines(t *testing.T) {
	captureOutput(t)
	path := filepath.Join(t.TempDir(), "tvctl.log")

	Init(Options{File: path})
	Info("[INFO] first\n")
	Error("[ERROR] second\n")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, bytes.HasSuffix(lines[0], []byte(" [INFO] first")))
	assert.True(t, bytes.HasSuffix(lines[1], []byte(" [ERROR] second")))
	assert.NotContains(t, string(data), "\x1b[")
}
