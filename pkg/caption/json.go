package caption

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Decode reads a JSON document snapshot from r. The field names match what
// the downstream renderer and SRT exporter consume, so snapshots round-trip
// between hosts without translation.
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("caption: decode document: %w", err)
	}
	return doc, nil
}

// Encode writes doc to w as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("caption: encode document: %w", err)
	}
	return nil
}

// LoadFile reads a document snapshot from the file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("caption: open %q: %w", path, err)
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("caption: load %q: %w", path, err)
	}
	return doc, nil
}

// SaveFile writes a document snapshot to the file at path, creating or
// truncating it.
func SaveFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("caption: create %q: %w", path, err)
	}
	defer f.Close()
	if err := Encode(f, doc); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("caption: close %q: %w", path, err)
	}
	return nil
}
