package theory

import (
	"fmt"
	"math"
	"sort"
)

// TimeTolerance absorbs the floating-point noise left over from rational
// note-length arithmetic. All time comparisons in this module go through
// the helpers below.
const TimeTolerance = 0.01

// TimeEq reports whether two times are equal within tolerance
func TimeEq(a, b float64) bool {
	return math.Abs(a-b) < TimeTolerance
}

// TimeLess reports whether a is strictly before b, beyond tolerance
func TimeLess(a, b float64) bool {
	return a < b-TimeTolerance
}

// NoteEvent is one sounding pitch. Times are in quarter-note units; Pitch is
// an absolute semitone number (MIDI numbering). ID is a stable per-voice
// index assigned by NewVoice; downstream components compare IDs, never
// positions, to decide whether a voice changed notes.
type NoteEvent struct {
	ID       int          `json:"id"`
	Pitch    int          `json:"pitch"`
	Onset    float64      `json:"onset"`
	Duration float64      `json:"duration"`
	Degree   *ScaleDegree `json:"degree,omitempty"`
	Source   string       `json:"source,omitempty"`
}

// End returns the end of the note's half-open sounding range
func (n NoteEvent) End() float64 {
	return n.Onset + n.Duration
}

// NewVoice validates a monophonic line and assigns stable sequential IDs.
// Notes are returned sorted by onset. A non-positive duration, a negative
// onset, or overlapping sounding ranges within the voice is a contract
// violation and returns an error; gaps between notes are rests.
func NewVoice(notes []NoteEvent) ([]NoteEvent, error) {
	voice := make([]NoteEvent, len(notes))
	copy(voice, notes)

	sort.SliceStable(voice, func(i, j int) bool {
		return voice[i].Onset < voice[j].Onset
	})

	for i := range voice {
		n := &voice[i]
		if n.Duration <= 0 {
			return nil, fmt.Errorf("note %d: non-positive duration %v", i, n.Duration)
		}
		if n.Onset < -TimeTolerance {
			return nil, fmt.Errorf("note %d: negative onset %v", i, n.Onset)
		}
		if i > 0 && TimeLess(n.Onset, voice[i-1].End()) {
			return nil, fmt.Errorf("notes %d and %d overlap within one voice", i-1, i)
		}
		n.ID = i
	}

	return voice, nil
}

// Transpose derives a new voice shifted by the given number of semitones.
// The source notes are never mutated; IDs are preserved so the copy stands
// in for the original in hypothesis testing.
func Transpose(voice []NoteEvent, semitones int) []NoteEvent {
	out := make([]NoteEvent, len(voice))
	for i, n := range voice {
		n.Pitch += semitones
		out[i] = n
	}
	return out
}

// Shift derives a new voice displaced in time by offset quarter-note units
func Shift(voice []NoteEvent, offset float64) []NoteEvent {
	out := make([]NoteEvent, len(voice))
	for i, n := range voice {
		n.Onset += offset
		out[i] = n
	}
	return out
}

// VoiceSpan returns the onset of the first note and the end of the last
// sounding note, or (0, 0) for an empty voice.
func VoiceSpan(voice []NoteEvent) (start, end float64) {
	if len(voice) == 0 {
		return 0, 0
	}
	start = voice[0].Onset
	for _, n := range voice {
		if n.End() > end {
			end = n.End()
		}
	}
	return start, end
}
