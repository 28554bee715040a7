package harmony

import "github.com/strettolab/contrapunto/algorithms/theory"

// ChordQuality represents the quality/type of a chord hypothesis
type ChordQuality int

const (
	ChordMajor ChordQuality = iota
	ChordMinor
	ChordDiminished
	ChordAugmented
	ChordMajor6
	ChordMinor6
	ChordDominant7
	ChordMajor7
	ChordMinor7
	ChordHalfDim7
	ChordDim7
	ChordNone
)

func (q ChordQuality) String() string {
	switch q {
	case ChordMajor:
		return "major"
	case ChordMinor:
		return "minor"
	case ChordDiminished:
		return "diminished"
	case ChordAugmented:
		return "augmented"
	case ChordMajor6:
		return "major6"
	case ChordMinor6:
		return "minor6"
	case ChordDominant7:
		return "dominant7"
	case ChordMajor7:
		return "major7"
	case ChordMinor7:
		return "minor7"
	case ChordHalfDim7:
		return "half-diminished7"
	case ChordDim7:
		return "diminished7"
	case ChordNone:
		return "none"
	default:
		return "unknown"
	}
}

// suffix is the chord-symbol suffix used when naming a candidate
func (q ChordQuality) suffix() string {
	switch q {
	case ChordMajor:
		return ""
	case ChordMinor:
		return "m"
	case ChordDiminished:
		return "dim"
	case ChordAugmented:
		return "aug"
	case ChordMajor6:
		return "6"
	case ChordMinor6:
		return "m6"
	case ChordDominant7:
		return "7"
	case ChordMajor7:
		return "maj7"
	case ChordMinor7:
		return "m7"
	case ChordHalfDim7:
		return "m7b5"
	case ChordDim7:
		return "dim7"
	default:
		return "?"
	}
}

// ChordTemplate is one quality's interval recipe. A candidate is admissible
// only if every Required interval is among the beat's pitch classes; the
// full Intervals set decides which notes count as chord tones. Complexity
// ranks the hypothesis cost in the sequence search.
type ChordTemplate struct {
	Quality    ChordQuality `json:"quality"`
	Name       string       `json:"name"`
	Intervals  []int        `json:"intervals"`
	Required   []int        `json:"required"`
	Complexity int          `json:"complexity"`
}

// chordTemplates is the fixed hypothesis vocabulary: triads, sixths,
// sevenths. A slice, not a map, so candidate generation is deterministic.
var chordTemplates = []ChordTemplate{
	{ChordMajor, "major", []int{0, 4, 7}, []int{0, 4}, 1},
	{ChordMinor, "minor", []int{0, 3, 7}, []int{0, 3}, 1},
	{ChordDiminished, "diminished", []int{0, 3, 6}, []int{0, 3, 6}, 2},
	{ChordAugmented, "augmented", []int{0, 4, 8}, []int{0, 4, 8}, 2},
	{ChordMajor6, "major6", []int{0, 4, 7, 9}, []int{0, 4, 9}, 2},
	{ChordMinor6, "minor6", []int{0, 3, 7, 9}, []int{0, 3, 9}, 2},
	{ChordDominant7, "dominant7", []int{0, 4, 7, 10}, []int{0, 4, 10}, 3},
	{ChordMajor7, "major7", []int{0, 4, 7, 11}, []int{0, 4, 11}, 3},
	{ChordMinor7, "minor7", []int{0, 3, 7, 10}, []int{0, 3, 10}, 3},
	{ChordHalfDim7, "half-diminished7", []int{0, 3, 6, 10}, []int{0, 3, 6, 10}, 4},
	{ChordDim7, "diminished7", []int{0, 3, 6, 9}, []int{0, 3, 6, 9}, 4},
}

// seventhInterval returns the template's seventh above the root, or -1 for
// chords without one. Used for the seventh-in-the-bass penalty.
func (t ChordTemplate) seventhInterval() int {
	switch t.Quality {
	case ChordDominant7, ChordMinor7, ChordHalfDim7:
		return 10
	case ChordMajor7:
		return 11
	case ChordDim7:
		return 9
	default:
		return -1
	}
}

// ChordName builds the chord symbol for a root pitch class and quality
func ChordName(root int, quality ChordQuality) string {
	return theory.NoteName(root) + quality.suffix()
}
