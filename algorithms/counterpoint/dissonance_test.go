package counterpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDissonances_Suspension(t *testing.T) {
	p := fourFour(t)
	// a third, the upper voice held into a fourth on the secondary accent,
	// then resolved down by step to a third
	a := voice(t, note(65, 0, 3), note(64, 3, 1))
	b := voice(t, note(62, 0, 2), note(60, 2, 2))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)
	require.Len(t, sims, 3)

	cls := ClassifyDissonances(sims, a, b)
	require.Len(t, cls, 1)
	assert.Equal(t, DissonanceSuspension, cls[0].Type)
	assert.Equal(t, 1, cls[0].Voice)
	assert.InDelta(t, 2.0, cls[0].Onset, 1e-9)
}

func TestClassifyDissonances_PassingTone(t *testing.T) {
	p := fourFour(t)
	a := voice(t, note(64, 0, 1), note(65, 1, 0.5), note(67, 1.5, 1))
	b := voice(t, note(60, 0, 3))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)

	cls := ClassifyDissonances(sims, a, b)
	require.Len(t, cls, 1)
	assert.Equal(t, DissonancePassing, cls[0].Type)
	assert.Equal(t, 1, cls[0].Voice)
}

func TestClassifyDissonances_NeighborTone(t *testing.T) {
	p := fourFour(t)
	a := voice(t, note(64, 0, 1), note(65, 1, 1), note(64, 2, 1))
	b := voice(t, note(60, 0, 3))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)

	cls := ClassifyDissonances(sims, a, b)
	require.Len(t, cls, 1)
	assert.Equal(t, DissonanceNeighbor, cls[0].Type)
}

func TestClassifyDissonances_Anticipation(t *testing.T) {
	p := fourFour(t)
	a := voice(t, note(67, 0, 1.5), note(65, 1.5, 0.5), note(65, 2, 1))
	b := voice(t, note(60, 0, 2), note(62, 2, 1))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)

	cls := ClassifyDissonances(sims, a, b)
	require.Len(t, cls, 1)
	assert.Equal(t, DissonanceAnticipation, cls[0].Type)
	assert.InDelta(t, 1.5, cls[0].Onset, 1e-9)
}

func TestClassifyDissonances_Appoggiatura(t *testing.T) {
	p := fourFour(t)
	a := voice(t, note(60, 0, 2), note(65, 2, 1), note(64, 3, 1))
	b := voice(t, note(60, 0, 4))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)

	cls := ClassifyDissonances(sims, a, b)
	require.Len(t, cls, 1)
	assert.Equal(t, DissonanceAppoggiatura, cls[0].Type)
}

func TestClassifyDissonances_Unprepared(t *testing.T) {
	p := fourFour(t)
	// a bare tritone on the downbeat with no melodic context
	a := voice(t, note(66, 0, 1))
	b := voice(t, note(60, 0, 1))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)

	cls := ClassifyDissonances(sims, a, b)
	require.Len(t, cls, 1)
	assert.Equal(t, DissonanceUnprepared, cls[0].Type)
}

func TestClassifyDissonances_ConsonancesSkipped(t *testing.T) {
	p := fourFour(t)
	a := voice(t, note(64, 0, 1), note(67, 1, 1))
	b := voice(t, note(60, 0, 2))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)

	assert.Empty(t, ClassifyDissonances(sims, a, b))
}

func TestClassifySimultaneity_ConsonantImmediate(t *testing.T) {
	p := fourFour(t)
	a := voice(t, note(64, 0, 1))
	b := voice(t, note(60, 0, 1))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)
	require.Len(t, sims, 1)

	c := ClassifySimultaneity(sims[0], 0, sims, a, b)
	assert.Equal(t, DissonanceConsonant, c.Type)
	assert.Zero(t, c.Voice)
}

func TestClassifyDissonances_RulePrecedence(t *testing.T) {
	p := fourFour(t)
	// a prepared, step-resolving dissonance on a weak beat could also read
	// as a neighbor figure; suspension has priority
	a := voice(t, note(65, 0, 2.5), note(64, 2.5, 0.5), note(65, 3, 1))
	b := voice(t, note(62, 0, 2), note(60, 2, 2))

	sims, err := FindSimultaneities(a, b, p)
	require.NoError(t, err)

	cls := ClassifyDissonances(sims, a, b)
	require.NotEmpty(t, cls)
	assert.Equal(t, DissonanceSuspension, cls[0].Type)
}
