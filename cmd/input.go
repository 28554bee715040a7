package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/strettolab/contrapunto/algorithms/theory"
)

// noteInput is the on-disk note shape; IDs are assigned on load
type noteInput struct {
	Pitch    int     `json:"pitch"`
	Onset    float64 `json:"onset"`
	Duration float64 `json:"duration"`
}

// loadVoice reads a JSON note array and validates it into a voice
func loadVoice(path string) ([]theory.NoteEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read voice %s: %w", path, err)
	}

	var raw []noteInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse voice %s: %w", path, err)
	}

	notes := make([]theory.NoteEvent, len(raw))
	for i, n := range raw {
		notes[i] = theory.NoteEvent{Pitch: n.Pitch, Onset: n.Onset, Duration: n.Duration}
	}

	voice, err := theory.NewVoice(notes)
	if err != nil {
		return nil, fmt.Errorf("invalid voice %s: %w", path, err)
	}

	if keyFlag != "" {
		tonic, mode, err := theory.ParseKey(keyFlag)
		if err != nil {
			return nil, err
		}
		voice = theory.AnnotateDegrees(voice, tonic, mode)
	}
	return voice, nil
}

// writeJSON prints a report to stdout
func writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
