package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/behavior-assessor/internal/logger"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	out, _ := executeSplit(t, args...)
	return out
}

// executeSplit runs the root command and returns stdout and stderr separately.
func executeSplit(t *testing.T, args ...string) (string, string) {
	t.Helper()
	prev := logger.Log
	t.Cleanup(func() { logger.Log = prev })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return stdout.String(), stderr.String()
}

func TestSchemaCommand(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(execute(t, "schema", "--variant", "flat")), &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Contains(t, doc["required"], "overall_autism_likelihood")
}

func TestFallbackCommand(t *testing.T) {
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(execute(t, "fallback", "--variant", "nested")), &out))
	assert.Equal(t, "fallback", out["source"])
	assert.Contains(t, out, "assessment_metadata")
}

func TestAnalyzeCommandWithoutBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("llm:\n  provider: none\nschema:\n  variant: flat\n"), 0o600))
	conv := filepath.Join(dir, "conv.json")
	require.NoError(t, os.WriteFile(conv, []byte(`{"session_id":"cli-1"}`), 0o600))

	stdout, stderr := executeSplit(t, "--config", cfg, "analyze", "--conversation", conv)

	// stdout carries only the result so it can be piped into other tools.
	require.True(t, json.Valid([]byte(stdout)), "stdout is not pure JSON:\n%s", stdout)
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "fallback", out["source"])
	assert.Contains(t, out, "session_id")
	assert.Contains(t, stderr, "returning fallback assessment")
}

func TestReadPayloadRejectsNonObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`[1,2]`), 0o600))
	_, err := readPayload(p)
	assert.Error(t, err)

	empty, err := readPayload("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
