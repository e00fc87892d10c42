package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxcli/internal/config"
)

func TestIsValidOperation(t *testing.T) {
	for _, op := range validOperations {
		assert.True(t, isValidOperation(op), op)
	}
	assert.False(t, isValidOperation("describe"))
	assert.False(t, isValidOperation(""))
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()

	applyFlags(cfg, "data", "facts.csv", "", "", "", "results", "snap.db")

	assert.Equal(t, "data", cfg.Input.Dir)
	assert.Equal(t, "facts.csv", cfg.Input.Fact)
	// Unset flags leave configured values alone.
	assert.Equal(t, config.DefaultDirectorFile, cfg.Input.Director)
	assert.Equal(t, config.DefaultGenreFile, cfg.Input.Genre)
	assert.Equal(t, "results", cfg.Output.Dir)
	assert.Equal(t, "snap.db", cfg.Output.SnapshotPath)
}

func TestResolveLogPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	cfg := config.Default()
	cfg.Logging.FilePath = "boxcli.log"
	resolveLogPath(cfg)
	assert.Equal(t, filepath.Join("logs", "boxcli.log"), cfg.Logging.FilePath)
	assert.DirExists(t, "logs")

	// Paths that already name a directory stay put.
	cfg.Logging.FilePath = filepath.Join("var", "app.log")
	resolveLogPath(cfg)
	assert.Equal(t, filepath.Join("var", "app.log"), cfg.Logging.FilePath)
}
