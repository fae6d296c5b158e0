// Package config reads cbindgen_config.json, the file describing which
// headers to translate, which clang arguments to parse them with, and
// which feature tags to group them under. Modeled directly on reqtraq's
// config/config.go: an unexported json* staging struct unmarshalled
// with encoding/json, then converted into the public Config type this
// codebase actually uses, with every I/O and parse error wrapped via
// github.com/pkg/errors.
package config

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/daedaleanai/cbindgen/clang"
	"github.com/daedaleanai/cbindgen/headerset"
)

// jsonInvocation is one feature-tagged parse invocation as it appears in
// cbindgen_config.json.
type jsonInvocation struct {
	Feature string   `json:"feature"`
	Headers []string `json:"headers"`
	Args    []string `json:"args"`
}

// jsonConfig is the on-disk shape of cbindgen_config.json.
type jsonConfig struct {
	Invocations           []jsonInvocation `json:"invocations"`
	IncludeSystemHeaders  bool             `json:"includeSystemHeaders"`
	StubUnsupportedMacros bool             `json:"stubUnsupportedMacros"`
	OutputDir             string           `json:"outputDir"`
}

// Config is the parsed, validated form of cbindgen_config.json that the
// rest of this codebase consumes.
type Config struct {
	Invocations           *headerset.Group
	IncludeSystemHeaders  bool
	StubUnsupportedMacros bool
	OutputDir             string
}

// ParseFile reads and validates cbindgen_config.json at path, resolving
// every header path relative to the config file's own directory —
// exactly as reqtraq's ParseConfig resolves document paths relative to
// the repo root.
func ParseFile(path string) (Config, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading %s", path)
	}

	var jc jsonConfig
	if err := json.Unmarshal(raw, &jc); err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}

	baseDir := filepath.Dir(path)
	group := headerset.NewGroup()
	for _, inv := range jc.Invocations {
		if inv.Feature == "" {
			return Config{}, errors.Errorf("%s: invocation missing a \"feature\" tag", path)
		}
		headers := make([]headerset.Header, 0, len(inv.Headers))
		for _, h := range inv.Headers {
			p := h
			if !filepath.IsAbs(p) {
				p = filepath.Join(baseDir, p)
			}
			headers = append(headers, headerset.Header{Path: p, Args: inv.Args})
		}
		if err := group.Add(headerset.Invocation{
			Features: headerset.Feature(inv.Feature),
			Headers:  headers,
			Args:     inv.Args,
		}); err != nil {
			return Config{}, errors.Wrapf(err, "%s", path)
		}
	}

	outputDir := jc.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(baseDir, outputDir)
	}

	return Config{
		Invocations:           group,
		IncludeSystemHeaders:  jc.IncludeSystemHeaders,
		StubUnsupportedMacros: jc.StubUnsupportedMacros,
		OutputDir:             outputDir,
	}, nil
}

// ParseFlags is the clang.ParseFlags bitmask every invocation in this
// config is parsed with. DetailedPreprocessingRecord is always set —
// spec §6 "required to observe macro definitions" — alongside
// SkipFunctionBodies, since this pipeline never translates function
// bodies.
func (c Config) ParseFlags() clang.ParseFlags {
	return clang.FlagDetailedPreprocessingRecord | clang.FlagSkipFunctionBodies
}
