package theory

import "fmt"

// IntervalQuality represents the quality of an interval
type IntervalQuality int

const (
	IntervalPerfect IntervalQuality = iota
	IntervalMajor
	IntervalMinor
	IntervalAugmented
	IntervalDiminished
)

func (q IntervalQuality) String() string {
	switch q {
	case IntervalPerfect:
		return "perfect"
	case IntervalMajor:
		return "major"
	case IntervalMinor:
		return "minor"
	case IntervalAugmented:
		return "augmented"
	case IntervalDiminished:
		return "diminished"
	default:
		return "unknown"
	}
}

// Interval is the classification of the distance between two pitches.
// Class follows species-counterpoint numbering: 1=unison, 2=second, ...,
// 8=octave. Distances of an octave or more reduce modulo 12, except that a
// true octave reports class 8 rather than 1.
type Interval struct {
	Class     int             `json:"class"`
	Quality   IntervalQuality `json:"quality"`
	Semitones int             `json:"semitones"` // unreduced absolute distance
}

// intervalTable maps each semitone residue (0-11) to its class and quality.
// The tritone is taken as an augmented fourth.
var intervalTable = [12]Interval{
	{Class: 1, Quality: IntervalPerfect},
	{Class: 2, Quality: IntervalMinor},
	{Class: 2, Quality: IntervalMajor},
	{Class: 3, Quality: IntervalMinor},
	{Class: 3, Quality: IntervalMajor},
	{Class: 4, Quality: IntervalPerfect},
	{Class: 4, Quality: IntervalAugmented},
	{Class: 5, Quality: IntervalPerfect},
	{Class: 6, Quality: IntervalMinor},
	{Class: 6, Quality: IntervalMajor},
	{Class: 7, Quality: IntervalMinor},
	{Class: 7, Quality: IntervalMajor},
}

// Classify maps a semitone distance to an Interval. It is total: every
// integer input, positive or negative, yields a classification.
func Classify(semitones int) Interval {
	d := semitones
	if d < 0 {
		d = -d
	}

	iv := intervalTable[d%12]
	iv.Semitones = d

	// A sounding octave is class 8, not a unison
	if iv.Class == 1 && d > 0 {
		iv.Class = 8
	}

	return iv
}

// Consonant reports whether the interval is consonant under the strict
// species rule: class in {1, 3, 5, 6, 8} and quality neither augmented nor
// diminished. The perfect fourth is dissonant here; callers that treat the
// fourth as consonant apply that policy themselves.
func (iv Interval) Consonant() bool {
	if iv.Quality == IntervalAugmented || iv.Quality == IntervalDiminished {
		return false
	}
	switch iv.Class {
	case 1, 3, 5, 6, 8:
		return true
	}
	return false
}

// Name returns a human-readable interval name, e.g. "perfect 5th"
func (iv Interval) Name() string {
	return fmt.Sprintf("%s %s", iv.Quality, ordinal(iv.Class))
}

func ordinal(class int) string {
	switch class {
	case 1:
		return "unison"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 8:
		return "octave"
	default:
		return fmt.Sprintf("%dth", class)
	}
}
