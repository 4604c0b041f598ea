package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBuildInfo(t *testing.T, v, c, d string) {
	t.Helper()
	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = origVersion, origCommit, origDate
	})
	version, commit, date = v, c, d
}

func TestVersionCommand(t *testing.T) {
	setBuildInfo(t, "0.4.0", "9c1e2ad", "2026-09-30")

	out, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Equal(t,
		"elevate 0.4.0 (9c1e2ad, built 2026-09-30)\n"+runtime.Version()+" "+runtime.GOOS+"/"+runtime.GOARCH+"\n",
		out)
}

func TestVersionShort(t *testing.T) {
	setBuildInfo(t, "0.4.0", "9c1e2ad", "2026-09-30")

	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "0.4.0\n", out)
}

func TestVersionRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "version", "extra")
	require.Error(t, err)
}
