package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strettolab/contrapunto/algorithms/counterpoint"
)

func TestEvaluateStretto_GridCoverage(t *testing.T) {
	a := NewAnalyzer(fourFour(t))
	subject := voice(t, note(60, 0, 1), note(64, 1, 1), note(67, 2, 1))

	res, err := a.EvaluateStretto(subject, StrettoOptions{})
	require.NoError(t, err)
	require.Equal(t, counterpoint.StatusOK, res.Status)

	// three default transpositions, entries on beats 1 and 2, all overlapping
	require.Len(t, res.Entries, 6)
	for _, e := range res.Entries {
		assert.Contains(t, []int{0, 7, 12}, e.Transposition)
		assert.GreaterOrEqual(t, e.Distance, 1.0)
		assert.LessOrEqual(t, e.Distance, 2.0)
		require.NotNil(t, e.Report)
		assert.Equal(t, counterpoint.StatusOK, e.Report.Status)
	}
}

func TestEvaluateStretto_RankingPrefersCleanEntries(t *testing.T) {
	a := NewAnalyzer(fourFour(t))
	subject := voice(t, note(60, 0, 1), note(64, 1, 1), note(67, 2, 1))

	res, err := a.EvaluateStretto(subject, StrettoOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Entries)

	for i := 1; i < len(res.Entries); i++ {
		assert.LessOrEqual(t, res.Entries[i-1].Violations, res.Entries[i].Violations)
	}
}

func TestEvaluateStretto_NonOverlappingEntriesSkipped(t *testing.T) {
	a := NewAnalyzer(fourFour(t))
	subject := voice(t, note(60, 0, 1), note(64, 1, 1), note(67, 2, 1))

	res, err := a.EvaluateStretto(subject, StrettoOptions{MinDistance: 5, MaxDistance: 5})
	require.NoError(t, err)
	assert.Equal(t, counterpoint.StatusOK, res.Status)
	assert.Empty(t, res.Entries)
}

func TestEvaluateStretto_TooShortSubject(t *testing.T) {
	a := NewAnalyzer(fourFour(t))

	res, err := a.EvaluateStretto(voice(t, note(60, 0, 1)), StrettoOptions{})
	require.NoError(t, err)
	assert.Equal(t, counterpoint.StatusTooShort, res.Status)
	assert.Empty(t, res.Entries)
}

func TestCheckInvertible_ConsonantPairInverts(t *testing.T) {
	a := NewAnalyzer(fourFour(t))
	subject := voice(t, note(60, 0, 1), note(64, 1, 1), note(67, 2, 1))
	countersubject := voice(t, note(76, 0, 1), note(79, 1, 1), note(76, 2, 1))

	report, err := a.CheckInvertible(subject, countersubject)
	require.NoError(t, err)
	require.Equal(t, counterpoint.StatusOK, report.Status)
	require.NotNil(t, report.Original)
	require.NotNil(t, report.Inverted)

	// thirds and sixths stay consonant in both orientations
	assert.Empty(t, report.Original.Violations)
	assert.Empty(t, report.Inverted.Violations)
	assert.True(t, report.Invertible)
}

func TestCheckInvertible_ParallelsBlockInversion(t *testing.T) {
	a := NewAnalyzer(fourFour(t))
	subject := voice(t, note(60, 0, 1), note(62, 1, 1), note(64, 2, 1))
	countersubject := voice(t, note(79, 0, 1), note(81, 1, 1), note(83, 2, 1))

	report, err := a.CheckInvertible(subject, countersubject)
	require.NoError(t, err)

	// parallel twelfths invert into parallel fifths
	assert.NotEmpty(t, report.Original.Violations)
	assert.NotEmpty(t, report.Inverted.Violations)
	assert.False(t, report.Invertible)
}
