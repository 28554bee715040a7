package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreeOf_NativeMembers(t *testing.T) {
	// C major: C D E F G A B
	for i, pitch := range []int{60, 62, 64, 65, 67, 69, 71} {
		d := DegreeOf(pitch, 0, ModeMajor)
		assert.Equal(t, ScaleDegree{Degree: i + 1, Alteration: 0}, d, "pitch %d", pitch)
	}
}

func TestDegreeOf_Alterations(t *testing.T) {
	// F# in C major: both F and G are native, the lower degree raised wins
	assert.Equal(t, ScaleDegree{Degree: 4, Alteration: 1}, DegreeOf(66, 0, ModeMajor))

	// Eb in C major reads as raised 2 under the lower-neighbor-first rule
	assert.Equal(t, ScaleDegree{Degree: 2, Alteration: 1}, DegreeOf(63, 0, ModeMajor))
}

func TestDegreeOf_Minor(t *testing.T) {
	// A natural minor: G natural is degree 7
	assert.Equal(t, ScaleDegree{Degree: 7, Alteration: 0}, DegreeOf(67, 9, ModeNaturalMinor))
	// A harmonic minor: G# is degree 7, G natural is lowered 7
	assert.Equal(t, ScaleDegree{Degree: 7, Alteration: 0}, DegreeOf(68, 9, ModeHarmonicMinor))
	assert.Equal(t, ScaleDegree{Degree: 7, Alteration: -1}, DegreeOf(67, 9, ModeHarmonicMinor))
}

func TestDegreeOf_TonicIsPitchClass(t *testing.T) {
	// any octave of the tonic is degree 1
	assert.Equal(t, ScaleDegree{Degree: 1, Alteration: 0}, DegreeOf(48, 0, ModeMajor))
	assert.Equal(t, ScaleDegree{Degree: 1, Alteration: 0}, DegreeOf(72, 0, ModeMajor))
}

func TestDegreeOf_Modes(t *testing.T) {
	// D dorian: B natural is degree 6
	assert.Equal(t, ScaleDegree{Degree: 6, Alteration: 0}, DegreeOf(71, 2, ModeDorian))
	// E phrygian: F natural is degree 2
	assert.Equal(t, ScaleDegree{Degree: 2, Alteration: 0}, DegreeOf(65, 4, ModePhrygian))
	// F lydian: B natural is degree 4
	assert.Equal(t, ScaleDegree{Degree: 4, Alteration: 0}, DegreeOf(71, 5, ModeLydian))
}

func TestNoteName(t *testing.T) {
	assert.Equal(t, "C", NoteName(60))
	assert.Equal(t, "A", NoteName(69))
	assert.Equal(t, "F#", NoteName(66))
	assert.Equal(t, "B", NoteName(-1))
}

func TestParseKey(t *testing.T) {
	tonic, mode, err := ParseKey("C major")
	assert.NoError(t, err)
	assert.Equal(t, 0, tonic)
	assert.Equal(t, ModeMajor, mode)

	tonic, mode, err = ParseKey("f# dorian")
	assert.NoError(t, err)
	assert.Equal(t, 6, tonic)
	assert.Equal(t, ModeDorian, mode)

	tonic, mode, err = ParseKey("Bb harmonic minor")
	assert.NoError(t, err)
	assert.Equal(t, 10, tonic)
	assert.Equal(t, ModeHarmonicMinor, mode)

	tonic, mode, err = ParseKey("a minor")
	assert.NoError(t, err)
	assert.Equal(t, 9, tonic)
	assert.Equal(t, ModeNaturalMinor, mode)

	_, _, err = ParseKey("C")
	assert.Error(t, err)
	_, _, err = ParseKey("H major")
	assert.Error(t, err)
	_, _, err = ParseKey("C klingon")
	assert.Error(t, err)
}

func TestAnnotateDegrees(t *testing.T) {
	voice, err := NewVoice([]NoteEvent{
		{Pitch: 62, Onset: 0, Duration: 1},
		{Pitch: 66, Onset: 1, Duration: 1},
	})
	assert.NoError(t, err)

	annotated := AnnotateDegrees(voice, 2, ModeDorian)
	assert.Equal(t, &ScaleDegree{Degree: 1, Alteration: 0}, annotated[0].Degree)
	assert.Equal(t, &ScaleDegree{Degree: 3, Alteration: 1}, annotated[1].Degree)

	// the source voice stays untouched
	assert.Nil(t, voice[0].Degree)
}
