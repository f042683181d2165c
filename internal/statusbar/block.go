package statusbar

import (
	"encoding/json"
	"fmt"
	"io"
)

// Segment is one colored piece of a composite status line.
type Segment struct {
	FullText string `json:"full_text"`
	Color    string `json:"color,omitempty"`
}

// Block is the record handed to the status-bar host: either a plain
// FullText or a Composite of colored segments, plus a scheduling hint
// telling the host how many seconds to wait before asking again.
type Block struct {
	FullText     string    `json:"full_text,omitempty"`
	Composite    []Segment `json:"composite,omitempty"`
	CacheTimeout int       `json:"cache_timeout"`
}

// Encode marshals a block into its wire form.
func Encode(block Block) ([]byte, error) {
	payload, err := json.Marshal(block)
	if err != nil {
		return nil, fmt.Errorf("marshal status block: %w", err)
	}
	return payload, nil
}

// Write emits a block as one newline-terminated JSON line, the way bar
// hosts consume module output.
func Write(w io.Writer, block Block) error {
	payload, err := Encode(block)
	if err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write trailing newline: %w", err)
	}
	return nil
}
