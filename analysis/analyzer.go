package analysis

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/strettolab/contrapunto/algorithms/counterpoint"
	"github.com/strettolab/contrapunto/algorithms/harmony"
	"github.com/strettolab/contrapunto/algorithms/theory"
	"github.com/strettolab/contrapunto/logging"
)

// PairReport is the full two-voice analysis: every sounding interval, the
// parallel-perfect violations, the species label of every dissonance and the
// motion profile between the voices
type PairReport struct {
	ID              uuid.UUID                        `json:"id"`
	Status          string                           `json:"status"`
	Simultaneities  []counterpoint.Simultaneity      `json:"simultaneities"`
	Violations      []counterpoint.ParallelViolation `json:"violations"`
	Dissonances     []counterpoint.Classification    `json:"dissonances"`
	Motion          counterpoint.MotionResult        `json:"motion"`
	ConsonanceRatio float64                          `json:"consonance_ratio"`
}

// VoiceReport is the single-voice analysis: the implied harmony per beat
type VoiceReport struct {
	ID      uuid.UUID                `json:"id"`
	Status  string                   `json:"status"`
	Start   float64                  `json:"start"`
	End     float64                  `json:"end"`
	Harmony *harmony.InferenceResult `json:"harmony"`
}

// Analyzer runs the contrapuntal and harmonic analyses under one captured
// Config. The Config is copied at construction and never mutated, so a
// single Analyzer is safe to share across goroutines evaluating different
// voice combinations.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with default configuration for a meter
func NewAnalyzer(m theory.Meter) *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig(m))
}

// NewAnalyzerWithConfig creates an analyzer from an explicit configuration
func NewAnalyzerWithConfig(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg.normalized()}
}

// Config returns a copy of the analyzer's effective configuration
func (a *Analyzer) Config() Config {
	return a.cfg
}

// AnalyzePair evaluates two voices against each other. Voices that never
// sound together produce a report with a non-ok Status rather than an error;
// only an unusable meter is fatal.
func (a *Analyzer) AnalyzePair(voiceA, voiceB []theory.NoteEvent) (*PairReport, error) {
	sims, err := counterpoint.FindSimultaneities(voiceA, voiceB, a.cfg.Counterpoint)
	if err != nil {
		return nil, err
	}

	report := &PairReport{
		ID:             uuid.New(),
		Status:         counterpoint.StatusOK,
		Simultaneities: sims,
	}
	if len(sims) == 0 {
		report.Status = counterpoint.StatusEmpty
		return report, nil
	}

	report.Violations = counterpoint.CheckParallelPerfects(sims)
	report.Dissonances = counterpoint.ClassifyDissonances(sims, voiceA, voiceB)
	report.Motion = counterpoint.ClassifyMotions(sims, voiceA, voiceB, a.cfg.Counterpoint)
	report.ConsonanceRatio = consonanceRatio(sims)

	logging.Debug("pair analysis complete", logging.Fields{
		"id":             report.ID.String(),
		"simultaneities": len(sims),
		"violations":     len(report.Violations),
		"dissonances":    len(report.Dissonances),
	})
	return report, nil
}

// AnalyzeVoice infers the implied harmony of a single voice
func (a *Analyzer) AnalyzeVoice(voice []theory.NoteEvent) (*VoiceReport, error) {
	ha := harmony.NewHarmonyAnalyzerWithParams(a.cfg.Harmony)
	res, err := ha.InferSequence(voice)
	if err != nil {
		return nil, err
	}

	start, end := theory.VoiceSpan(voice)
	report := &VoiceReport{
		ID:      uuid.New(),
		Status:  res.Status,
		Start:   start,
		End:     end,
		Harmony: res,
	}

	logging.Debug("voice analysis complete", logging.Fields{
		"id":     report.ID.String(),
		"status": report.Status,
		"beats":  len(res.Beats),
	})
	return report, nil
}

func consonanceRatio(sims []counterpoint.Simultaneity) float64 {
	indicator := make([]float64, len(sims))
	for i, s := range sims {
		if s.Consonant {
			indicator[i] = 1
		}
	}
	return stat.Mean(indicator, nil)
}
