package easel

import (
	"encoding/json"
	"fmt"
	"io"
)

// SaveStrokes writes a stroke list as indented JSON. Together with
// LoadStrokes it round-trips editing sessions: feed the loaded list to
// WithStrokes (or Replay) to restore previous edits.
func SaveStrokes(w io.Writer, strokes []Stroke) error {
	data, err := json.MarshalIndent(strokes, "", "  ")
	if err != nil {
		return fmt.Errorf("easel: marshal strokes: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("easel: write strokes: %w", err)
	}
	return nil
}

// LoadStrokes reads a stroke list written by SaveStrokes.
func LoadStrokes(r io.Reader) ([]Stroke, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("easel: read strokes: %w", err)
	}
	var strokes []Stroke
	if err := json.Unmarshal(data, &strokes); err != nil {
		return nil, fmt.Errorf("easel: parse strokes: %w", err)
	}
	return strokes, nil
}
