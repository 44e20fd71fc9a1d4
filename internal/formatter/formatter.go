package formatter

import (
	"errors"
	"fmt"

	"github.com/vsa-tools/holo/internal/demo"
)

// ErrUnknownFormat is returned for unsupported output format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formatter defines the interface for output formatting.
type Formatter interface {
	Format(report *demo.Report) ([]byte, error)
}

// Options controls presentation concerns shared by formatters.
type Options struct {
	Color      bool
	Emoji      bool
	ShowTables bool
}

// New returns the formatter for a format name (text, json, markdown).
func New(format string, opts Options) (Formatter, error) {
	switch format {
	case "text", "":
		return NewTerminal(opts), nil
	case "json":
		return NewJSON(), nil
	case "markdown":
		return NewMarkdown(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
