// Package language provides the three-letter language codes used to select columns of a text table.
package language

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ErrInvalidCode is returned when a value is not exactly three uppercase ASCII letters.
var ErrInvalidCode = errors.New("invalid language code")

// Code is a validated language code such as "DEU" or "ENU".
// The zero value is not a valid code; use Parse to build one.
type Code string

// German is the language the device texts are authored in.
const German Code = "DEU"

var _ pflag.Value = (*Code)(nil)

// Check reports whether s can be used as a language code.
func Check(s string) error {
	if len(s) != 3 {
		return fmt.Errorf("%q is not a valid language: %w", s, ErrInvalidCode)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return fmt.Errorf("%q is not a valid language: %w", s, ErrInvalidCode)
		}
	}
	return nil
}

// Parse validates s and returns it as a Code.
func Parse(s string) (Code, error) {
	if err := Check(s); err != nil {
		return "", err
	}
	return Code(s), nil
}

func (c *Code) Set(val string) error {
	parsed, err := Parse(val)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Code) String() string {
	return string(c)
}

func (c *Code) Type() string {
	return "language"
}
