package theory

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Metric weight ladder. The dissonance and harmony components key off these
// exact values: a weight below WeightSecondary is a weak position.
const (
	WeightDownbeat    = 1.0
	WeightSecondary   = 0.75
	WeightBeat        = 0.5
	WeightSubdivision = 0.25
)

// InvalidMeterError reports a meter that is not a positive-integer pair.
// It is fatal: every beat and metric-weight computation depends on the
// meter, and a silently wrong one would corrupt every downstream judgment.
type InvalidMeterError struct {
	Reason string
}

func (e *InvalidMeterError) Error() string {
	return "invalid meter: " + e.Reason
}

// Meter is a time signature: a pair of positive integers. Compound meters
// (numerator a multiple of 3, at least 6, over an 8) group beats in
// three-eighth-note units.
type Meter struct {
	Numerator   int `json:"numerator" yaml:"numerator"`
	Denominator int `json:"denominator" yaml:"denominator"`
}

// NewMeter builds a validated meter
func NewMeter(numerator, denominator int) (Meter, error) {
	m := Meter{Numerator: numerator, Denominator: denominator}
	if err := m.Validate(); err != nil {
		return Meter{}, err
	}
	return m, nil
}

// MeterFromSlice builds a meter from a two-element [numerator, denominator]
// sequence, the shape the parsing collaborator hands over.
func MeterFromSlice(vals []int) (Meter, error) {
	if len(vals) != 2 {
		return Meter{}, &InvalidMeterError{Reason: fmt.Sprintf("want [numerator, denominator], got %d values", len(vals))}
	}
	return NewMeter(vals[0], vals[1])
}

// ParseMeter parses a "N/D" string such as "4/4" or "6/8"
func ParseMeter(s string) (Meter, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Meter{}, &InvalidMeterError{Reason: fmt.Sprintf("%q is not of the form N/D", s)}
	}
	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return Meter{}, &InvalidMeterError{Reason: fmt.Sprintf("numerator %q is not an integer", parts[0])}
	}
	den, err := strconv.Atoi(parts[1])
	if err != nil {
		return Meter{}, &InvalidMeterError{Reason: fmt.Sprintf("denominator %q is not an integer", parts[1])}
	}
	return NewMeter(num, den)
}

// Validate reports whether the meter is a positive-integer pair
func (m Meter) Validate() error {
	if m.Numerator <= 0 || m.Denominator <= 0 {
		return &InvalidMeterError{Reason: fmt.Sprintf("%d/%d is not a positive-integer pair", m.Numerator, m.Denominator)}
	}
	return nil
}

func (m Meter) String() string {
	return fmt.Sprintf("%d/%d", m.Numerator, m.Denominator)
}

// Compound reports whether the meter groups beats in three-eighth-note units
func (m Meter) Compound() bool {
	return m.Denominator == 8 && m.Numerator >= 6 && m.Numerator%3 == 0
}

// BeatDuration returns the length of one metric beat in quarter-note units:
// a dotted quarter for compound meters, 4/denominator otherwise.
func (m Meter) BeatDuration() float64 {
	if m.Compound() {
		return 1.5
	}
	return 4.0 / float64(m.Denominator)
}

// BeatsPerBar returns the number of metric beats in one bar
func (m Meter) BeatsPerBar() int {
	if m.Compound() {
		return m.Numerator / 3
	}
	return m.Numerator
}

// BarDuration returns the length of one bar in quarter-note units
func (m Meter) BarDuration() float64 {
	return float64(m.Numerator) * 4.0 / float64(m.Denominator)
}

// MetricWeight assigns a strength to a time position: 1.0 on the downbeat,
// 0.75 on the secondary accent (the middle beat of an even bar), 0.5 on any
// other main beat and 0.25 on subdivisions.
func (m Meter) MetricWeight(onset float64) float64 {
	bar := m.BarDuration()
	pos := math.Mod(onset, bar)
	if pos < 0 {
		pos += bar
	}
	if TimeEq(pos, bar) {
		pos = 0
	}

	beatDur := m.BeatDuration()
	beat := pos / beatDur
	nearest := math.Round(beat)
	if !TimeEq(pos, nearest*beatDur) {
		return WeightSubdivision
	}

	idx := int(nearest) % m.BeatsPerBar()
	switch {
	case idx == 0:
		return WeightDownbeat
	case m.BeatsPerBar()%2 == 0 && idx == m.BeatsPerBar()/2:
		return WeightSecondary
	default:
		return WeightBeat
	}
}
