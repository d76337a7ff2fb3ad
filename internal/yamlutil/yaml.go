// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits config input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

// MaxDocumentSize limits ordered documents such as icon descriptors, which
// run to several megabytes for recent releases (default 64MB).
var MaxDocumentSize = 64 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: document is not a mapping")
)

// MapSlice is an ordered mapping as produced by UnmarshalOrdered.
type MapSlice = yaml.MapSlice

// MapItem is a single key/value pair of a MapSlice.
type MapItem = yaml.MapItem

func validateInput(data []byte, v any, limit int) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > limit {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), limit)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict decodes data into v, rejecting unknown fields.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v, MaxInputSize); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalOrdered decodes a top-level mapping keeping the document's key
// order. Nested mappings are decoded as MapSlice as well; sequences become
// []any and scalars their natural Go types. JSON input is accepted.
func UnmarshalOrdered(data []byte) (MapSlice, error) {
	var doc any
	if err := validateInput(data, &doc, MaxDocumentSize); err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	ms, ok := doc.(MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}
	return ms, nil
}

// Lookup returns the value stored under key in an ordered mapping.
func Lookup(ms MapSlice, key string) (any, bool) {
	for _, item := range ms {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value, true
		}
	}
	return nil, false
}
