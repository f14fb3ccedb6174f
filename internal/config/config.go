// SPDX-License-Identifier: MIT

// Package config loads routecipher CLI defaults from the environment and
// validates the effective settings once flags have been applied.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/routecipher/internal/render"
	"github.com/katalvlaran/routecipher/matrix"
)

// Output formats, re-exported for flag help and defaults.
const (
	FormatText = render.FormatText
	FormatJSON = render.FormatJSON
	FormatYAML = render.FormatYAML
)

// Grid limits. Each side is capped, and so is the cell count, so encode and
// order never allocate more than MaxCells entries.
const (
	MaxSide  = 4096
	MaxCells = 1 << 20
)

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the effective CLI configuration.
type Config struct {
	Width    int    `env:"ROUTECIPHER_WIDTH" envDefault:"9" validate:"min=1,max=4096"`
	Height   int    `env:"ROUTECIPHER_HEIGHT" envDefault:"3" validate:"min=1,max=4096"`
	Padding  string `env:"ROUTECIPHER_PADDING" envDefault:"X" validate:"required,padding"`
	KeepAll  bool   `env:"ROUTECIPHER_KEEP_ALL" envDefault:"false"`
	Format   string `env:"ROUTECIPHER_FORMAT" envDefault:"text" validate:"oneof=text json yaml"`
	LogLevel string `env:"ROUTECIPHER_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load parses the environment over the documented defaults.
// It does not validate: flags may still override the values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks the effective configuration. Every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// PaddingRune returns the padding as a rune. Only meaningful after Validate.
func (c Config) PaddingRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Padding)
	return r
}

// MatrixOptions translates the configuration into matrix options.
// Only call after Validate: WithPadding panics on an invalid rune.
func (c Config) MatrixOptions() []matrix.Option {
	filter := matrix.FilterLetters
	if c.KeepAll {
		filter = matrix.FilterNone
	}

	return []matrix.Option{
		matrix.WithPadding(c.PaddingRune()),
		matrix.WithFilter(filter),
	}
}

// newValidator registers the "padding" rule (exactly one printable, non-space
// rune) and the struct-level "maxcells" rule (Width*Height ≤ MaxCells).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("padding", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if utf8.RuneCountInString(s) != 1 {
			return false
		}
		r, _ := utf8.DecodeRuneInString(s)
		return matrix.ValidPadding(r)
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(Config)
		if c.Width > 0 && c.Height > 0 && c.Width > MaxCells/c.Height {
			sl.ReportError(c.Width, "Width", "Width", "maxcells", "")
		}
	}, Config{})

	return v
}
