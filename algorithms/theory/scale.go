package theory

import (
	"fmt"
	"strings"
)

// Mode identifies a scale's interval-to-degree table
type Mode int

const (
	ModeMajor Mode = iota
	ModeNaturalMinor
	ModeHarmonicMinor
	ModeDorian
	ModePhrygian
	ModeLydian
	ModeMixolydian
	ModeLocrian
)

func (m Mode) String() string {
	switch m {
	case ModeMajor:
		return "major"
	case ModeNaturalMinor:
		return "natural minor"
	case ModeHarmonicMinor:
		return "harmonic minor"
	case ModeDorian:
		return "dorian"
	case ModePhrygian:
		return "phrygian"
	case ModeLydian:
		return "lydian"
	case ModeMixolydian:
		return "mixolydian"
	case ModeLocrian:
		return "locrian"
	default:
		return "unknown"
	}
}

// modeSteps maps each mode to its semitone offsets above the tonic
var modeSteps = map[Mode][7]int{
	ModeMajor:         {0, 2, 4, 5, 7, 9, 11},
	ModeNaturalMinor:  {0, 2, 3, 5, 7, 8, 10},
	ModeHarmonicMinor: {0, 2, 3, 5, 7, 8, 11},
	ModeDorian:        {0, 2, 3, 5, 7, 9, 10},
	ModePhrygian:      {0, 1, 3, 5, 7, 8, 10},
	ModeLydian:        {0, 2, 4, 6, 7, 9, 11},
	ModeMixolydian:    {0, 2, 4, 5, 7, 9, 10},
	ModeLocrian:       {0, 1, 3, 5, 6, 8, 10},
}

// ScaleDegree locates a pitch within a scale: Degree 1-7 plus an Alteration
// of -1, 0 or +1 relative to the native scale member.
type ScaleDegree struct {
	Degree     int `json:"degree"`
	Alteration int `json:"alteration"`
}

// DegreeOf computes the scale degree of a pitch relative to a tonic pitch
// class and mode. A pitch outside the scale takes the degree of the nearest
// native member with the alteration set accordingly; when both chromatic
// neighbors are native, the lower degree with alteration +1 wins.
func DegreeOf(pitch, tonic int, mode Mode) ScaleDegree {
	steps, ok := modeSteps[mode]
	if !ok {
		steps = modeSteps[ModeMajor]
	}

	rel := ((pitch-tonic)%12 + 12) % 12
	for i, s := range steps {
		if s == rel {
			return ScaleDegree{Degree: i + 1, Alteration: 0}
		}
	}

	// raised form of the native member a semitone below
	below := (rel + 11) % 12
	for i, s := range steps {
		if s == below {
			return ScaleDegree{Degree: i + 1, Alteration: 1}
		}
	}

	// lowered form of the native member a semitone above
	above := (rel + 1) % 12
	for i, s := range steps {
		if s == above {
			return ScaleDegree{Degree: i + 1, Alteration: -1}
		}
	}

	// unreachable: diatonic scale gaps never exceed two semitones
	return ScaleDegree{Degree: 1, Alteration: 0}
}

var pitchClassNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = map[string]int{
	"Cb": 11, "Db": 1, "Eb": 3, "Fb": 4, "Gb": 6, "Ab": 8, "Bb": 10,
}

// NoteName returns the name of a pitch class (0=C ... 11=B)
func NoteName(pitch int) string {
	pc := ((pitch % 12) + 12) % 12
	return pitchClassNames[pc]
}

// ParseKey parses a key description like "C major", "f# dorian" or
// "a natural minor" into a tonic pitch class and mode
func ParseKey(s string) (int, Mode, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, ModeMajor, fmt.Errorf("invalid key %q: want \"<tonic> <mode>\"", s)
	}

	name := strings.ToUpper(fields[0][:1]) + strings.ToLower(fields[0][1:])
	tonic := -1
	for pc, n := range pitchClassNames {
		if n == name {
			tonic = pc
			break
		}
	}
	if tonic < 0 {
		pc, ok := flatNames[name]
		if !ok {
			return 0, ModeMajor, fmt.Errorf("unknown tonic %q", fields[0])
		}
		tonic = pc
	}

	var mode Mode
	switch strings.ToLower(strings.Join(fields[1:], " ")) {
	case "major", "ionian":
		mode = ModeMajor
	case "minor", "natural minor", "aeolian":
		mode = ModeNaturalMinor
	case "harmonic minor":
		mode = ModeHarmonicMinor
	case "dorian":
		mode = ModeDorian
	case "phrygian":
		mode = ModePhrygian
	case "lydian":
		mode = ModeLydian
	case "mixolydian":
		mode = ModeMixolydian
	case "locrian":
		mode = ModeLocrian
	default:
		return 0, ModeMajor, fmt.Errorf("unknown mode %q", strings.Join(fields[1:], " "))
	}
	return tonic, mode, nil
}

// AnnotateDegrees returns a copy of the voice with every note's Degree set
// relative to the key. The input voice is never mutated.
func AnnotateDegrees(voice []NoteEvent, tonic int, mode Mode) []NoteEvent {
	out := make([]NoteEvent, len(voice))
	for i, n := range voice {
		d := DegreeOf(n.Pitch, tonic, mode)
		n.Degree = &d
		out[i] = n
	}
	return out
}
