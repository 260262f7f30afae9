package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/cli"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	cmd := cli.NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestSysinfoCommand(t *testing.T) {
	out := execute(t, "sysinfo")
	assert.Contains(t, out, "OS and CPU info")
	assert.Contains(t, out, "Architecture")
}

func TestSyscallCommand(t *testing.T) {
	out := execute(t, "syscall", "-n", "1000")
	assert.Contains(t, out, "System clock")
	assert.Contains(t, out, "Loop count")
	assert.Contains(t, out, "1000")
}

func TestHiresCommand(t *testing.T) {
	out := execute(t, "hires", "-n", "1000")
	assert.Contains(t, out, "High-resolution timer")
	assert.Contains(t, out, "Time per call")
}

func TestHiresCommandFixedFrequency(t *testing.T) {
	out := execute(t, "hires", "-n", "1000", "--frequency-hz", "2800000000")
	assert.Contains(t, out, "Time per call")
}

func TestRootRunsFullSuite(t *testing.T) {
	out := execute(t, "-n", "1000")
	assert.Contains(t, out, "OS and CPU info")
	assert.Contains(t, out, "System clock")
	assert.Contains(t, out, "High-resolution timer")
}
