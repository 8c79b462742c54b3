package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ism7tools/ism7text/internal/config"
	"github.com/ism7tools/ism7text/internal/language"
	"github.com/ism7tools/ism7text/internal/texttable"
)

// tableOptions holds the persistent flags that select and filter a text table.
// Flags that were set on the command line take precedence over the config file.
type tableOptions struct {
	configFile       string
	file             string
	targetLanguage   language.Code
	originalLanguage language.Code
	includeFile      string
}

func loadConfig(configFile string) (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// resolve merges the config file with the flags changed on cmd.
func (opts *tableOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	localization := &cfg.Localization
	if flags.Changed("file") {
		localization.File = opts.file
	}
	if flags.Changed("language") {
		localization.TargetLanguage = opts.targetLanguage.String()
	}
	if flags.Changed("original-language") {
		localization.OriginalLanguage = opts.originalLanguage.String()
	}
	if flags.Changed("include-file") {
		localization.IncludeFile = opts.includeFile
	}

	if localization.File == "" {
		return nil, errors.New("no text table file: set --file or localization.file")
	}
	if localization.TargetLanguage == "" {
		return nil, errors.New("no target language: set --language or localization.target_language")
	}
	return cfg, nil
}

// loadDictionary reads the whole text table selected by cfg. The returned
// dictionary stays usable after the underlying file has been closed.
func loadDictionary(cfg config.LocalizationConfig) (texttable.Dictionary, error) {
	loader, err := texttable.Open(cfg.File, cfg.TargetLanguage)
	if err != nil {
		return texttable.Dictionary{}, err
	}
	defer func() { _ = loader.Close() }()

	if err := loader.SetOriginalLanguage(cfg.OriginalLanguage); err != nil {
		return texttable.Dictionary{}, fmt.Errorf("set original language: %w", err)
	}
	if cfg.IncludeFile != "" {
		loader.SetIncludeFile(cfg.IncludeFile)
	}
	if err := loader.Load(); err != nil {
		return texttable.Dictionary{}, fmt.Errorf("load %s: %w", cfg.File, err)
	}
	return loader.Dictionary(), nil
}

func (opts *tableOptions) dictionary(cmd *cobra.Command) (texttable.Dictionary, *config.Config, error) {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return texttable.Dictionary{}, nil, err
	}
	d, err := loadDictionary(cfg.Localization)
	if err != nil {
		return texttable.Dictionary{}, nil, err
	}
	return d, cfg, nil
}
