package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobals restores flag and config state after each test.
func resetGlobals(t *testing.T) {
	t.Helper()
	origURL, origTimeout, origOut, origCfg := flagURL, flagTimeout, flagOut, cfg
	origLogOut := log.Out
	log.SetOutput(io.Discard)
	t.Cleanup(func() {
		flagURL = origURL
		flagTimeout = origTimeout
		flagOut = origOut
		cfg = origCfg
		log.SetOutput(origLogOut)
	})
}

// setEnv temporarily sets an environment variable and restores it on cleanup.
func setEnv(t *testing.T, key, val string) {
	t.Helper()
	prev, exists := os.LookupEnv(key)
	os.Setenv(key, val)
	t.Cleanup(func() {
		if exists {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

// unsetEnv temporarily unsets an environment variable and restores it on
// cleanup.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, exists := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if exists {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestResolveConfigDefaults(t *testing.T) {
	resetGlobals(t)
	unsetEnv(t, "PLANARITY_URL")
	setEnv(t, "HOME", t.TempDir())

	flagURL, flagTimeout, flagOut = "", 0, ""
	resolveConfig()

	assert.Equal(t, "http://localhost:5000", flagURL)
	assert.Equal(t, 0, flagTimeout)
	assert.Equal(t, "planarity-out", flagOut)
}

func TestResolveConfigEnvURL(t *testing.T) {
	resetGlobals(t)
	setEnv(t, "PLANARITY_URL", "http://env-host:9999")
	setEnv(t, "HOME", t.TempDir())

	flagURL = ""
	resolveConfig()

	assert.Equal(t, "http://env-host:9999", flagURL)
}

func TestResolveConfigFlagWinsOverEnv(t *testing.T) {
	resetGlobals(t)
	setEnv(t, "PLANARITY_URL", "http://env-host:9999")
	setEnv(t, "HOME", t.TempDir())

	flagURL = "http://explicit-flag:1234"
	resolveConfig()

	assert.Equal(t, "http://explicit-flag:1234", flagURL)
}

func TestResolveConfigFromFile(t *testing.T) {
	resetGlobals(t)
	unsetEnv(t, "PLANARITY_URL")
	home := t.TempDir()
	setEnv(t, "HOME", home)

	dir := filepath.Join(home, ".planarity")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "service:\n  url: http://from-file:8080\n  timeoutSeconds: 30\noutputDir: results\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	flagURL, flagTimeout, flagOut = "", 0, ""
	resolveConfig()

	assert.Equal(t, "http://from-file:8080", flagURL)
	assert.Equal(t, 30, flagTimeout)
	assert.Equal(t, "results", flagOut)
}

func TestResolveConfigEnvWinsOverFile(t *testing.T) {
	resetGlobals(t)
	setEnv(t, "PLANARITY_URL", "http://env-host:9999")
	home := t.TempDir()
	setEnv(t, "HOME", home)

	dir := filepath.Join(home, ".planarity")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("service:\n  url: http://from-file:8080\n"), 0600))

	flagURL = ""
	resolveConfig()

	assert.Equal(t, "http://env-host:9999", flagURL)
}

func TestResolveConfigMalformedFile(t *testing.T) {
	resetGlobals(t)
	unsetEnv(t, "PLANARITY_URL")
	home := t.TempDir()
	setEnv(t, "HOME", home)

	dir := filepath.Join(home, ".planarity")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":::not-yaml:::"), 0600))

	flagURL = ""
	resolveConfig() // must not panic

	assert.Equal(t, "http://localhost:5000", flagURL)
}
