package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daedaleanai/cbindgen/clang"
	"github.com/daedaleanai/cbindgen/headerset"
)

func writeConfig(t *testing.T, dir, contents string) string {
	path := filepath.Join(dir, "cbindgen_config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "include"), 0755))
	path := writeConfig(t, dir, `{
		"invocations": [
			{"feature": "desktop", "headers": ["include/desktop.h"], "args": ["-DWIN32"]},
			{"feature": "app", "headers": ["include/app.h"], "args": ["-DAPP"]}
		],
		"stubUnsupportedMacros": true,
		"outputDir": "out"
	}`)

	cfg, err := ParseFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.StubUnsupportedMacros)
	assert.False(t, cfg.IncludeSystemHeaders)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.OutputDir)

	invocations := cfg.Invocations.All()
	require.Len(t, invocations, 2)
	assert.Equal(t, headerset.Feature("desktop"), invocations[0].Features)
	assert.Equal(t, filepath.Join(dir, "include", "desktop.h"), invocations[0].Headers[0].Path)
	assert.Equal(t, []string{"-DWIN32"}, invocations[0].Args)
}

func TestParseFileMissingFeature(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{"invocations": [{"headers": ["a.h"]}]}`)

	_, err := ParseFile(path)
	assert.Error(t, err)
}

func TestParseFileDuplicateFeature(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `{
		"invocations": [
			{"feature": "desktop", "headers": ["a.h"]},
			{"feature": "desktop", "headers": ["b.h"]}
		]
	}`)

	_, err := ParseFile(path)
	assert.Error(t, err)
}

func TestParseFlagsAlwaysSetsDetailedPreprocessingRecord(t *testing.T) {
	var cfg Config
	flags := cfg.ParseFlags()
	assert.NotZero(t, flags&clang.FlagDetailedPreprocessingRecord)
}
