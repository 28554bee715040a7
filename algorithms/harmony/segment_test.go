package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strettolab/contrapunto/algorithms/theory"
)

func note(pitch int, onset, duration float64) theory.NoteEvent {
	return theory.NoteEvent{Pitch: pitch, Onset: onset, Duration: duration}
}

func voice(t *testing.T, notes ...theory.NoteEvent) []theory.NoteEvent {
	t.Helper()
	v, err := theory.NewVoice(notes)
	require.NoError(t, err)
	return v
}

func fourFour(t *testing.T) theory.Meter {
	t.Helper()
	m, err := theory.NewMeter(4, 4)
	require.NoError(t, err)
	return m
}

func TestSegmentByBeat_SplitsSustainedNotes(t *testing.T) {
	v := voice(t, note(60, 0, 3), note(62, 3, 1))

	beats := segmentByBeat(v, fourFour(t))
	require.Len(t, beats, 4)

	// the dotted half reaches beats 0..2 as one fragment each
	for b := 0; b < 3; b++ {
		require.Len(t, beats[b], 1)
		seg := beats[b][0]
		assert.Equal(t, 60, seg.note.Pitch)
		assert.Equal(t, v[0].ID, seg.note.ID)
		assert.InDelta(t, float64(b), seg.onset, 1e-9)
		assert.InDelta(t, 1.0, seg.duration, 1e-9)
	}

	require.Len(t, beats[3], 1)
	assert.Equal(t, 62, beats[3][0].note.Pitch)
	assert.Equal(t, 2, beats[3][0].approach)
}

func TestSegmentByBeat_FirstNoteHasNoApproach(t *testing.T) {
	v := voice(t, note(60, 0, 1), note(67, 1, 1))

	beats := segmentByBeat(v, fourFour(t))
	require.Len(t, beats, 2)
	assert.Equal(t, -1, beats[0][0].approach)
	assert.Equal(t, 7, beats[1][0].approach)
}

func TestSegmentByBeat_MergesRepeatedAttacks(t *testing.T) {
	v := voice(t, note(60, 0, 0.5), note(60, 0.5, 0.5), note(62, 1, 1))

	beats := segmentByBeat(v, fourFour(t))
	require.Len(t, beats, 2)

	// two eighth-note restrikes of the same pitch weigh like one quarter
	require.Len(t, beats[0], 1)
	assert.Equal(t, 60, beats[0][0].note.Pitch)
	assert.InDelta(t, 1.0, beats[0][0].duration, 1e-9)
}

func TestSegmentByBeat_DifferentPitchesStaySeparate(t *testing.T) {
	v := voice(t, note(60, 0, 0.5), note(62, 0.5, 0.5))

	beats := segmentByBeat(v, fourFour(t))
	require.Len(t, beats, 1)
	require.Len(t, beats[0], 2)
}

func TestSegmentByBeat_GapBlocksMerge(t *testing.T) {
	v := voice(t, note(60, 0, 0.25), note(60, 0.5, 0.5))

	beats := segmentByBeat(v, fourFour(t))
	require.Len(t, beats, 1)
	require.Len(t, beats[0], 2, "a rest between restrikes keeps them apart")
}

func TestSegmentByBeat_CompoundMeter(t *testing.T) {
	m, err := theory.NewMeter(6, 8)
	require.NoError(t, err)
	require.True(t, m.Compound())

	v := voice(t, note(60, 0, 3))

	beats := segmentByBeat(v, m)
	require.Len(t, beats, 2)
	assert.InDelta(t, 1.5, beats[0][0].duration, 1e-9)
	assert.InDelta(t, 1.5, beats[1][0].onset, 1e-9)
}
