package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an encoding accepted by Decode.
type Format string

const (
	// FormatJSON reads a JSON array of items.
	FormatJSON Format = "json"
	// FormatYAML reads a YAML sequence of items.
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the Format from a file extension.
// Unrecognized extensions fall back to FormatYAML, which also parses JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Decode reads a menu from r and validates every entry.
//
// Errors:
//   - ErrUnknownFormat for a Format other than FormatJSON or FormatYAML.
//   - ErrInvalidItem (wrapped with the offending index) for an empty name or
//     negative calories/value.
//   - Decoder errors, wrapped.
func Decode(r io.Reader, format Format) ([]Item, error) {
	var (
		items []Item
		err   error
	)
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&items)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&items)
		if errors.Is(err, io.EOF) {
			err = nil // empty document is an empty menu
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("item: decode %s: %w", format, err)
	}

	if items == nil {
		items = []Item{}
	}
	for i := range items {
		if err = Validate(items[i]); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	return items, nil
}

// Validate checks a single item for an empty name or negative fields.
// Zero calories and zero value are allowed.
func Validate(it Item) error {
	switch {
	case strings.TrimSpace(it.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	case it.Calories < 0:
		return fmt.Errorf("%w: %s has negative calories %d", ErrInvalidItem, it.Name, it.Calories)
	case it.Value < 0:
		return fmt.Errorf("%w: %s has negative value %d", ErrInvalidItem, it.Name, it.Value)
	}

	return nil
}
