package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Localization LocalizationConfig `mapstructure:"localization"`
	Output       OutputConfig       `mapstructure:"output"`
}

type LocalizationConfig struct {
	File             string `mapstructure:"file" validate:"omitempty,file"`
	TargetLanguage   string `mapstructure:"target_language" validate:"omitempty,language"`
	OriginalLanguage string `mapstructure:"original_language" validate:"required,language"`
	// IncludeFile is a substring a TextTableEntry's File must contain. Empty disables filtering.
	IncludeFile string `mapstructure:"include_file"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=table yaml"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ism7text")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("localization.original_language", "DEU")
	v.SetDefault("localization.include_file", "")
	v.SetDefault("output.format", "table")

	if err := v.BindEnv("localization.file", "ISM7TEXT_FILE"); err != nil {
		return nil, fmt.Errorf("failed to bind ISM7TEXT_FILE environment variable: %w", err)
	}
	if err := v.BindEnv("localization.target_language", "ISM7TEXT_LANGUAGE"); err != nil {
		return nil, fmt.Errorf("failed to bind ISM7TEXT_LANGUAGE environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
