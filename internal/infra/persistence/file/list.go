package file

import (
	"fmt"

	"github.com/spf13/afero"
)

// LoadList reads and decodes the whole collection stored at path.
// A document that decodes to nothing (e.g. "null") is an empty collection.
func LoadList[T any](fs afero.Fs, path string, codec Codec) ([]T, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var items []T
	if err := codec.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveList encodes the whole collection and atomically replaces the file at path
func SaveList[T any](fs afero.Fs, path string, codec Codec, items []T) error {
	if items == nil {
		// Keeps the empty-list marker instead of "null"
		items = []T{}
	}

	data, err := codec.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	return WriteFileAtomic(fs, path, data)
}
