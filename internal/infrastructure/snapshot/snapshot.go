// Package snapshot provides codecs for exporting and importing the full
// ledger state in various formats.
package snapshot

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

// Snapshot is a complete, self-contained copy of ledger state. Importing a
// snapshot replaces the entire ledger; exporting never mutates it.
type Snapshot struct {
	People        []entities.Person       `json:"people" yaml:"people"`
	Relationships []entities.Relationship `json:"relationships" yaml:"relationships"`
	NetworkEvents []entities.NetworkEvent `json:"network_events" yaml:"network_events"`
}

// Codec defines the interface for encoding and decoding snapshots.
type Codec interface {
	Encode(w io.Writer, snap *Snapshot) error
	Decode(r io.Reader) (*Snapshot, error)
}

// ForFormat returns the codec for the given format.
// Supported formats: "json", "yaml". Returns nil for unknown formats.
func ForFormat(format string) Codec {
	switch strings.ToLower(format) {
	case "json":
		return &JSONCodec{}
	case "yaml", "yml":
		return &YAMLCodec{}
	default:
		return nil
	}
}

// ForFile returns the codec based on file extension.
func ForFile(filename string) Codec {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONCodec{}
	case ".yaml", ".yml":
		return &YAMLCodec{}
	default:
		return nil
	}
}
