package report

import (
	"io"
	"os"
)

// Format selects a Reporter implementation.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// IsValid reports whether f is a recognized Format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format selects text or JSON rendering.
	Format Format

	// Color controls colorized text output: "auto" (default), "always",
	// "never".
	Color string

	// ShowSummary appends aggregate statistics after the diagnostics.
	ShowSummary bool

	// Compact uses minified JSON when Format is FormatJSON.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}
