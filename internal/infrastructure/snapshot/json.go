package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONCodec encodes and decodes snapshots as JSON.
type JSONCodec struct{}

// Encode writes the snapshot as indented JSON.
func (c *JSONCodec) Encode(w io.Writer, snap *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Decode reads a JSON snapshot from the reader.
func (c *JSONCodec) Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &snap, nil
}
