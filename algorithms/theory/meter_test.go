package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeter_RejectsNonPositive(t *testing.T) {
	cases := [][2]int{{0, 4}, {4, 0}, {-3, 4}, {4, -8}, {0, 0}}
	for _, c := range cases {
		_, err := NewMeter(c[0], c[1])
		require.Error(t, err, "%d/%d", c[0], c[1])
		var invalid *InvalidMeterError
		assert.ErrorAs(t, err, &invalid)
	}
}

func TestNewMeter_AcceptsAnyPositivePair(t *testing.T) {
	cases := [][2]int{{4, 4}, {3, 4}, {6, 8}, {2, 2}, {12, 8}, {7, 8}, {5, 4}}
	for _, c := range cases {
		_, err := NewMeter(c[0], c[1])
		assert.NoError(t, err, "%d/%d", c[0], c[1])
	}
}

func TestMeterFromSlice_Shape(t *testing.T) {
	_, err := MeterFromSlice([]int{4})
	var invalid *InvalidMeterError
	require.ErrorAs(t, err, &invalid)

	_, err = MeterFromSlice([]int{0, 4})
	require.ErrorAs(t, err, &invalid)

	_, err = MeterFromSlice([]int{4, 4, 4})
	require.ErrorAs(t, err, &invalid)

	m, err := MeterFromSlice([]int{6, 8})
	require.NoError(t, err)
	assert.Equal(t, Meter{Numerator: 6, Denominator: 8}, m)
}

func TestParseMeter(t *testing.T) {
	m, err := ParseMeter("4/4")
	require.NoError(t, err)
	assert.Equal(t, Meter{4, 4}, m)

	var invalid *InvalidMeterError
	for _, s := range []string{"4", "4/4/4", "x/4", "4/y", "0/4", ""} {
		_, err := ParseMeter(s)
		assert.ErrorAs(t, err, &invalid, "%q", s)
	}
}

func TestMeter_Compound(t *testing.T) {
	assert.True(t, Meter{6, 8}.Compound())
	assert.True(t, Meter{9, 8}.Compound())
	assert.True(t, Meter{12, 8}.Compound())
	assert.False(t, Meter{3, 8}.Compound(), "3/8 is too short to group")
	assert.False(t, Meter{3, 4}.Compound())
	assert.False(t, Meter{4, 4}.Compound())
	assert.False(t, Meter{7, 8}.Compound())
}

func TestMeter_BeatDuration(t *testing.T) {
	assert.InDelta(t, 1.0, Meter{4, 4}.BeatDuration(), 1e-9)
	assert.InDelta(t, 0.5, Meter{7, 8}.BeatDuration(), 1e-9)
	assert.InDelta(t, 1.5, Meter{6, 8}.BeatDuration(), 1e-9, "compound beat is a dotted quarter")
	assert.InDelta(t, 2.0, Meter{2, 2}.BeatDuration(), 1e-9)
}

func TestMeter_MetricWeight_FourFour(t *testing.T) {
	m := Meter{4, 4}
	assert.Equal(t, WeightDownbeat, m.MetricWeight(0))
	assert.Equal(t, WeightBeat, m.MetricWeight(1))
	assert.Equal(t, WeightSecondary, m.MetricWeight(2))
	assert.Equal(t, WeightBeat, m.MetricWeight(3))
	assert.Equal(t, WeightSubdivision, m.MetricWeight(0.5))
	assert.Equal(t, WeightSubdivision, m.MetricWeight(2.75))

	// next bar repeats the pattern
	assert.Equal(t, WeightDownbeat, m.MetricWeight(4))
	assert.Equal(t, WeightSecondary, m.MetricWeight(6))
}

func TestMeter_MetricWeight_CompoundSixEight(t *testing.T) {
	m := Meter{6, 8}
	assert.Equal(t, WeightDownbeat, m.MetricWeight(0))
	assert.Equal(t, WeightSecondary, m.MetricWeight(1.5), "second compound beat")
	assert.Equal(t, WeightSubdivision, m.MetricWeight(0.5))
	assert.Equal(t, WeightSubdivision, m.MetricWeight(1.0))
	assert.Equal(t, WeightDownbeat, m.MetricWeight(3.0))
}

func TestMeter_MetricWeight_ThreeFour(t *testing.T) {
	m := Meter{3, 4}
	assert.Equal(t, WeightDownbeat, m.MetricWeight(0))
	// odd bars have no secondary accent
	assert.Equal(t, WeightBeat, m.MetricWeight(1))
	assert.Equal(t, WeightBeat, m.MetricWeight(2))
}
