package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/ism7tools/ism7text/internal/language"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	customs := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{tag: "file", fn: isFileReadable, message: "{0} must be an existing and readable file"},
		{tag: "language", fn: isLanguage, message: "{0} must be three uppercase letters such as DEU or ENU"},
	}
	for _, c := range customs {
		if err := validate.RegisterValidation(c.tag, c.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", c.tag, err)
		}
		if err := validate.RegisterTranslation(c.tag, trans, registrationFunc(c.tag, c.message), translateFunc(c.tag)); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", c.tag, err)
		}
	}

	return validate, trans, nil
}

func registrationFunc(tag, message string) validator.RegisterTranslationsFunc {
	return func(ut ut.Translator) error {
		return ut.Add(tag, message, true)
	}
}

func translateFunc(tag string) validator.TranslationFunc {
	return func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}
}

func isLanguage(fl validator.FieldLevel) bool {
	return language.Check(fl.Field().String()) == nil
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	if err != nil || info.IsDir() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(7))) != 0
}
