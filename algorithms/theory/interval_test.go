package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_AllResidues(t *testing.T) {
	cases := []struct {
		semitones int
		class     int
		quality   IntervalQuality
	}{
		{0, 1, IntervalPerfect},
		{1, 2, IntervalMinor},
		{2, 2, IntervalMajor},
		{3, 3, IntervalMinor},
		{4, 3, IntervalMajor},
		{5, 4, IntervalPerfect},
		{6, 4, IntervalAugmented},
		{7, 5, IntervalPerfect},
		{8, 6, IntervalMinor},
		{9, 6, IntervalMajor},
		{10, 7, IntervalMinor},
		{11, 7, IntervalMajor},
	}

	for _, c := range cases {
		iv := Classify(c.semitones)
		assert.Equal(t, c.class, iv.Class, "class of %d semitones", c.semitones)
		assert.Equal(t, c.quality, iv.Quality, "quality of %d semitones", c.semitones)
		assert.Equal(t, c.semitones, iv.Semitones)
	}
}

func TestClassify_OctaveIsClass8(t *testing.T) {
	assert.Equal(t, 1, Classify(0).Class)
	assert.Equal(t, 8, Classify(12).Class)
	assert.Equal(t, 8, Classify(24).Class)
	assert.Equal(t, IntervalPerfect, Classify(12).Quality)
}

func TestClassify_NegativeDistance(t *testing.T) {
	assert.Equal(t, Classify(7), Classify(-7))
	assert.Equal(t, Classify(16), Classify(-16))
}

func TestClassify_CompoundIntervalsReduce(t *testing.T) {
	// a tenth classifies as a third
	iv := Classify(16)
	assert.Equal(t, 3, iv.Class)
	assert.Equal(t, IntervalMajor, iv.Quality)
	assert.Equal(t, 16, iv.Semitones)
}

func TestConsonant(t *testing.T) {
	consonant := []int{0, 3, 4, 7, 8, 9, 12, 15, 16, 19}
	dissonant := []int{1, 2, 5, 6, 10, 11, 13, 18}

	for _, s := range consonant {
		assert.True(t, Classify(s).Consonant(), "%d semitones should be consonant", s)
	}
	for _, s := range dissonant {
		assert.False(t, Classify(s).Consonant(), "%d semitones should be dissonant", s)
	}
}

func TestInterval_Name(t *testing.T) {
	assert.Equal(t, "perfect 5th", Classify(7).Name())
	assert.Equal(t, "minor 3rd", Classify(3).Name())
	assert.Equal(t, "perfect unison", Classify(0).Name())
	assert.Equal(t, "perfect octave", Classify(12).Name())
	assert.Equal(t, "augmented 4th", Classify(6).Name())
}
