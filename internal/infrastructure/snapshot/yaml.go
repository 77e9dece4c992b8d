package snapshot

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLCodec encodes and decodes snapshots as YAML.
type YAMLCodec struct{}

// Encode writes the snapshot as YAML.
func (c *YAMLCodec) Encode(w io.Writer, snap *Snapshot) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// Decode reads a YAML snapshot from the reader.
func (c *YAMLCodec) Decode(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &snap, nil
}
