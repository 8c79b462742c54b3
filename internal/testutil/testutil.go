// Package testutil provides shared test helpers for creating text table and config fixtures.
package testutil

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Entry is one TextTableEntry fixture. Texts maps a language code to its text.
type Entry struct {
	Texts map[string]string
	File  string
}

// TextTableXML renders entries as a text table document. Language elements
// are written in code order, followed by File when set.
func TextTableXML(entries ...Entry) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n<TextTable>\n")
	for _, e := range entries {
		b.WriteString("  <TextTableEntry>")
		codes := make([]string, 0, len(e.Texts))
		for code := range e.Texts {
			codes = append(codes, code)
		}
		slices.Sort(codes)
		for _, code := range codes {
			writeElement(&b, code, e.Texts[code])
		}
		if e.File != "" {
			writeElement(&b, "File", e.File)
		}
		b.WriteString("</TextTableEntry>\n")
	}
	b.WriteString("</TextTable>\n")
	return b.String()
}

func writeElement(b *strings.Builder, name, text string) {
	b.WriteString("<" + name + ">")
	_ = xml.EscapeText(b, []byte(text))
	b.WriteString("</" + name + ">")
}

// WriteTextTable writes entries to texts.xml under dir and returns its path.
func WriteTextTable(t *testing.T, dir string, entries ...Entry) string {
	t.Helper()
	path := filepath.Join(dir, "texts.xml")
	require.NoError(t, os.WriteFile(path, []byte(TextTableXML(entries...)), 0644))
	return path
}

// ConfigOption configures optional fields when creating a config fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	targetLanguage   string
	originalLanguage string
	includeFile      string
	outputFormat     string
}

func WithTargetLanguage(code string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.targetLanguage = code
	}
}

func WithOriginalLanguage(code string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.originalLanguage = code
	}
}

func WithIncludeFile(filter string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.includeFile = filter
	}
}

func WithOutputFormat(format string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.outputFormat = format
	}
}

// SetupTestConfig creates config.yml under tmpDir pointing at tablePath.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, tablePath string, opts ...ConfigOption) string {
	t.Helper()

	var cfg testConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.WriteString("localization:\n  file: " + tablePath + "\n")
	if cfg.targetLanguage != "" {
		b.WriteString("  target_language: " + cfg.targetLanguage + "\n")
	}
	if cfg.originalLanguage != "" {
		b.WriteString("  original_language: " + cfg.originalLanguage + "\n")
	}
	if cfg.includeFile != "" {
		b.WriteString("  include_file: " + cfg.includeFile + "\n")
	}
	if cfg.outputFormat != "" {
		b.WriteString("output:\n  format: " + cfg.outputFormat + "\n")
	}

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(b.String()), 0644))
	return cfgPath
}
