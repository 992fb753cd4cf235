// Package storage persists each collection as one JSON array file on disk.
// Reads load the whole file; writes replace it via a temp file and rename
// so a crash mid-write never leaves a truncated collection behind.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
)

// Collection is one named JSON array file inside the data directory.
type Collection struct {
	path string
	name string
}

// NewCollection ensures the data directory exists and initializes the
// collection file to an empty array when it is missing.
func NewCollection(dir, name string) (*Collection, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	c := &Collection{
		path: filepath.Join(dir, name+".json"),
		name: name,
	}

	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		if err := os.WriteFile(c.path, []byte("[]\n"), 0o644); err != nil {
			return nil, fmt.Errorf("initialize collection %s: %w", name, err)
		}
	}

	return c, nil
}

// Path returns the collection file location.
func (c *Collection) Path() string {
	return c.path
}

// Load reads the collection file into v, which must be a pointer to a
// slice. A missing file, unreadable file, or corrupt JSON degrades to an
// empty collection: the error is logged and v is left at its zero value,
// never surfaced to the caller.
func (c *Collection) Load(v any) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		slog.Warn("collection read failed, using empty collection",
			"collection", c.name,
			"error", err,
		)
		return
	}

	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("collection parse failed, using empty collection",
			"collection", c.name,
			"error", err,
		)
		// Unmarshal fills v element by element, so a type mismatch
		// partway through a valid array leaves mangled records behind.
		// Reset v to keep the empty-collection guarantee.
		reflect.ValueOf(v).Elem().SetZero()
	}
}

// Save serializes v as indented JSON and atomically replaces the
// collection file. A failed save leaves the previous file contents intact.
func (c *Collection) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection %s: %w", c.name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(c.path), c.name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", c.name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", c.name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file for %s: %w", c.name, err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace collection %s: %w", c.name, err)
	}
	return nil
}
