package counterpoint

import "github.com/strettolab/contrapunto/algorithms/theory"

// Analysis status values for results that are structurally fine but not
// applicable to the given input. Callers skip rather than fail on these.
const (
	StatusOK       = "ok"
	StatusEmpty    = "empty"
	StatusTooShort = "too short"
)

// Params configures one counterpoint analysis pass. A Params value is
// captured per analysis; it never changes mid-pass, which keeps concurrent
// evaluation of several hypotheses safe.
type Params struct {
	Meter theory.Meter `json:"meter" yaml:"meter"`

	// FourthIsDissonant treats a perfect fourth against the lower voice as
	// a dissonance, the strict species rule
	FourthIsDissonant bool `json:"fourth_is_dissonant" yaml:"fourth_is_dissonant"`

	// ReassessWindow bounds, in beats, how far apart two separately-timed
	// moves may be and still count as one near-simultaneous motion
	ReassessWindow float64 `json:"reassess_window" yaml:"reassess_window"`

	// ShortVoiceWindow replaces ReassessWindow when the shorter voice has
	// at most ShortVoiceLimit notes; short subjects sample motion sparsely
	ShortVoiceWindow float64 `json:"short_voice_window" yaml:"short_voice_window"`
	ShortVoiceLimit  int     `json:"short_voice_limit" yaml:"short_voice_limit"`
}

// DefaultParams returns the standard rule interpretation for a meter
func DefaultParams(m theory.Meter) Params {
	return Params{
		Meter:             m,
		FourthIsDissonant: true,
		ReassessWindow:    0.25,
		ShortVoiceWindow:  0.5,
		ShortVoiceLimit:   8,
	}
}

// windowFor picks the reassessment window for a given pair of voice lengths
func (p Params) windowFor(lenA, lenB int) float64 {
	short := lenA
	if lenB < short {
		short = lenB
	}
	if short <= p.ShortVoiceLimit {
		return p.ShortVoiceWindow
	}
	return p.ReassessWindow
}
