package harmony

import "github.com/strettolab/contrapunto/algorithms/theory"

// Analysis status values for inputs the engine cannot say anything about
const (
	StatusOK       = "ok"
	StatusEmpty    = "empty"
	StatusTooShort = "too short"
)

// Params contains parameters for chord-sequence inference. A Params value is
// captured per analysis call and never mutated.
type Params struct {
	Meter theory.Meter `json:"meter" yaml:"meter"`

	// Salience: weight = max((duration - PassingNoteThreshold) * metric *
	// approach, MinimumFloor) * DecayFactor^beatDistance
	PassingNoteThreshold float64 `json:"passing_note_threshold" yaml:"passing_note_threshold"`
	MinimumFloor         float64 `json:"minimum_floor" yaml:"minimum_floor"`

	// Metric multipliers, downbeat strongest
	DownbeatMultiplier    float64 `json:"downbeat_multiplier" yaml:"downbeat_multiplier"`
	SecondaryMultiplier   float64 `json:"secondary_multiplier" yaml:"secondary_multiplier"`
	BeatMultiplier        float64 `json:"beat_multiplier" yaml:"beat_multiplier"`
	SubdivisionMultiplier float64 `json:"subdivision_multiplier" yaml:"subdivision_multiplier"`

	// Approach multipliers: passing motion is weak evidence of harmony,
	// fourth/fifth/octave leaps commonly target chord members
	StepMultiplier float64 `json:"step_multiplier" yaml:"step_multiplier"`
	SkipMultiplier float64 `json:"skip_multiplier" yaml:"skip_multiplier"`
	LeapMultiplier float64 `json:"leap_multiplier" yaml:"leap_multiplier"`

	// Temporal spreading: notes from up to NeighborBeats away contribute,
	// attenuated geometrically, so an arpeggiated chord registers as one
	// harmony
	DecayFactor   float64 `json:"decay_factor" yaml:"decay_factor"`
	NeighborBeats int     `json:"neighbor_beats" yaml:"neighbor_beats"`

	// Scoring
	NonChordToneFloor  float64 `json:"non_chord_tone_floor" yaml:"non_chord_tone_floor"`
	ComplexityPenalty  float64 `json:"complexity_penalty" yaml:"complexity_penalty"`
	ContinuityBonus    float64 `json:"continuity_bonus" yaml:"continuity_bonus"`
	RootBassBonus      float64 `json:"root_bass_bonus" yaml:"root_bass_bonus"`
	FifthBassPenalty   float64 `json:"fifth_bass_penalty" yaml:"fifth_bass_penalty"`
	SeventhBassPenalty float64 `json:"seventh_bass_penalty" yaml:"seventh_bass_penalty"`
}

// DefaultParams returns the standard inference parameters for a meter
func DefaultParams(m theory.Meter) Params {
	return Params{
		Meter:                 m,
		PassingNoteThreshold:  0.2,
		MinimumFloor:          0.1,
		DownbeatMultiplier:    1.5,
		SecondaryMultiplier:   1.2,
		BeatMultiplier:        1.0,
		SubdivisionMultiplier: 0.7,
		StepMultiplier:        0.8,
		SkipMultiplier:        1.0,
		LeapMultiplier:        1.2,
		DecayFactor:           0.6,
		NeighborBeats:         2,
		NonChordToneFloor:     0.15,
		ComplexityPenalty:     0.25,
		ContinuityBonus:       0.5,
		RootBassBonus:         1.1,
		FifthBassPenalty:      0.9,
		SeventhBassPenalty:    0.75,
	}
}
