package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/knapsack/selector"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"
	// FormatYAML writes YAML with two-space indentation.
	FormatYAML Format = "yaml"
	// FormatTable writes lipgloss tables.
	FormatTable Format = "table"
)

// IsUnknown reports whether f is outside SupportedFormats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// SupportedFormats returns every Format name, for flag help and validation.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f.IsUnknown() {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(SupportedFormats(), ", "))
	}

	return f, nil
}

// Writer serializes reports to an io.Writer in one Format.
// Close must be called when the Writer was built by NewFileWriter.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter returns a Writer for output; nil means os.Stdout.
// An unknown format falls back to table.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to table", "format", format)
		format = FormatTable
	}

	return &Writer{format: format, output: output}
}

// NewFileWriter creates path and returns a Writer on it. Close releases the file.
func NewFileWriter(format Format, path string) (*Writer, error) {
	file, err := os.Create(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("report: create output file: %w", err)
	}

	w := NewWriter(format, file)
	w.closer = file

	return w, nil
}

// Format returns the Writer's effective format.
func (w *Writer) Format() Format {
	return w.format
}

// Output returns the destination, for text written alongside serialized values.
func (w *Writer) Output() io.Writer {
	return w.output
}

// Close releases the underlying file, if any. Safe to call more than once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	err := w.closer.Close()
	w.closer = nil

	return err
}

// Serialize writes v in the Writer's format.
// The table format accepts Run, []Run and selector.Comparison.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatJSON:
		return w.serializeJSON(v)
	case FormatYAML:
		return w.serializeYAML(v)
	case FormatTable:
		return w.serializeTable(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, w.format)
	}
}

func (w *Writer) serializeJSON(v any) error {
	encoder := json.NewEncoder(w.output)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}

	return nil
}

func (w *Writer) serializeYAML(v any) error {
	encoder := yaml.NewEncoder(w.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}

	return encoder.Close()
}

func (w *Writer) serializeTable(v any) error {
	switch x := v.(type) {
	case Run:
		return renderRun(w.output, x)
	case *Run:
		if x == nil {
			return fmt.Errorf("%w: nil *Run", ErrUnsupportedValue)
		}
		return renderRun(w.output, *x)
	case []Run:
		for _, r := range x {
			if err := renderRun(w.output, r); err != nil {
				return err
			}
		}
		return nil
	case selector.Comparison:
		return renderComparison(w.output, x)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
