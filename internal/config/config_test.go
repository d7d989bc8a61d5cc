package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_Yml(t *testing.T) {
	dir := t.TempDir()
	content := "format: html\ntitle: Build Matrix\nverbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svcmerge.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, "Build Matrix", cfg.Title)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.Output)
}

func TestLoad_YamlFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svcmerge.yaml"), []byte("format: csv\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "csv", cfg.Format)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "svcmerge.yml"), []byte("format: [oops\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
