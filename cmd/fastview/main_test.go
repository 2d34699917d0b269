package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"version"}, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "fastview "+version+"\n", out.String())
}

func TestRunUsage(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 0, run(nil, &out, &errOut))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	assert.Equal(t, 2, run([]string{"train"}, &out, &errOut))
	assert.Contains(t, errOut.String(), `unknown command "train"`)
}

func TestRunChecks(t *testing.T) {
	var logs bytes.Buffer
	failed := runChecks(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	assert.Equal(t, 0, failed, logs.String())
	assert.Contains(t, logs.String(), "check passed")
	assert.Equal(t, len(scenarios()), strings.Count(logs.String(), "scenario ok"))
}

func TestRunCheckCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 0, run([]string{"check"}, &out, &errOut))
	assert.Equal(t, 2, run([]string{"check", "-bogus"}, &out, &errOut))
}

func TestRunBench(t *testing.T) {
	var out bytes.Buffer
	cfg := benchConfig{Size: 8, Budget: time.Millisecond, ClockHz: 1e9}
	require.NoError(t, runBench(&out, slog.New(slog.NewTextHandler(io.Discard, nil)), cfg))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(benchCases(8)))
	for _, line := range lines {
		assert.Contains(t, line, "mean time:")
		assert.Contains(t, line, "cycles:")
	}

	assert.Error(t, runBench(&out, slog.New(slog.NewTextHandler(io.Discard, nil)), benchConfig{Size: 1}))
}

func TestRunBench_OddSize(t *testing.T) {
	var out bytes.Buffer
	cfg := benchConfig{Size: 7, Budget: time.Millisecond}
	require.NoError(t, runBench(&out, slog.New(slog.NewTextHandler(io.Discard, nil)), cfg))
	assert.Contains(t, out.String(), "strided")
}
