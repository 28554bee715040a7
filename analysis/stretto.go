package analysis

import (
	"sort"

	"github.com/google/uuid"

	"github.com/strettolab/contrapunto/algorithms/counterpoint"
	"github.com/strettolab/contrapunto/algorithms/theory"
	"github.com/strettolab/contrapunto/logging"
)

// StrettoOptions spans the search grid: every transposition is tried at
// every entry distance from MinDistance up to MaxDistance in DistanceStep
// increments. Zero-valued fields fall back to defaults derived from the
// meter and the subject.
type StrettoOptions struct {
	Transpositions []int   `json:"transpositions" yaml:"transpositions"`
	MinDistance    float64 `json:"min_distance" yaml:"min_distance"`
	MaxDistance    float64 `json:"max_distance" yaml:"max_distance"`
	DistanceStep   float64 `json:"distance_step" yaml:"distance_step"`
}

// DefaultStrettoOptions tries the answer at the unison, fifth and octave,
// entering on every beat the subject still overlaps
func DefaultStrettoOptions(m theory.Meter, subject []theory.NoteEvent) StrettoOptions {
	_, end := theory.VoiceSpan(subject)
	beat := m.BeatDuration()
	return StrettoOptions{
		Transpositions: []int{0, 7, 12},
		MinDistance:    beat,
		MaxDistance:    end - beat,
		DistanceStep:   beat,
	}
}

// StrettoEntry is one evaluated dux/comes combination with the figures a
// composer weighs when choosing an entry point
type StrettoEntry struct {
	Transposition   int     `json:"transposition"`
	Distance        float64 `json:"distance"`
	Violations      int     `json:"violations"`
	Dissonances     int     `json:"dissonances"`
	Unprepared      int     `json:"unprepared"`
	ContraryRatio   float64 `json:"contrary_ratio"`
	ConsonanceRatio float64 `json:"consonance_ratio"`

	Report *PairReport `json:"report,omitempty"`
}

// StrettoResult lists every overlapping combination, best first
type StrettoResult struct {
	ID      uuid.UUID      `json:"id"`
	Status  string         `json:"status"`
	Entries []StrettoEntry `json:"entries"`
}

// EvaluateStretto lays a transposed copy of the subject against itself at
// every grid point and analyzes each overlapping combination. Combinations
// where the comes enters after the dux has finished are skipped. Entries are
// ordered by fewest violations, then fewest unprepared dissonances, then
// fewest dissonances overall, then the largest contrary-motion share.
func (a *Analyzer) EvaluateStretto(subject []theory.NoteEvent, opts StrettoOptions) (*StrettoResult, error) {
	if err := a.cfg.Meter.Validate(); err != nil {
		return nil, err
	}

	result := &StrettoResult{ID: uuid.New(), Status: counterpoint.StatusOK}
	if len(subject) < 2 {
		result.Status = counterpoint.StatusTooShort
		return result, nil
	}

	defaults := DefaultStrettoOptions(a.cfg.Meter, subject)
	if len(opts.Transpositions) == 0 {
		opts.Transpositions = defaults.Transpositions
	}
	if opts.MinDistance <= 0 {
		opts.MinDistance = defaults.MinDistance
	}
	if opts.MaxDistance <= 0 {
		opts.MaxDistance = defaults.MaxDistance
	}
	if opts.DistanceStep <= 0 {
		opts.DistanceStep = defaults.DistanceStep
	}

	_, end := theory.VoiceSpan(subject)
	for _, tr := range opts.Transpositions {
		comes := theory.Transpose(subject, tr)
		for d := opts.MinDistance; !theory.TimeLess(opts.MaxDistance, d); d += opts.DistanceStep {
			if !theory.TimeLess(d, end) {
				continue // the comes would enter after the dux ends
			}

			report, err := a.AnalyzePair(subject, theory.Shift(comes, d))
			if err != nil {
				return nil, err
			}
			if report.Status != counterpoint.StatusOK {
				continue
			}

			result.Entries = append(result.Entries, StrettoEntry{
				Transposition:   tr,
				Distance:        d,
				Violations:      len(report.Violations),
				Dissonances:     len(report.Dissonances),
				Unprepared:      countUnprepared(report.Dissonances),
				ContraryRatio:   contraryRatio(report.Motion),
				ConsonanceRatio: report.ConsonanceRatio,
				Report:          report,
			})
		}
	}

	sort.SliceStable(result.Entries, func(i, j int) bool {
		ei, ej := result.Entries[i], result.Entries[j]
		if ei.Violations != ej.Violations {
			return ei.Violations < ej.Violations
		}
		if ei.Unprepared != ej.Unprepared {
			return ei.Unprepared < ej.Unprepared
		}
		if ei.Dissonances != ej.Dissonances {
			return ei.Dissonances < ej.Dissonances
		}
		return ei.ContraryRatio > ej.ContraryRatio
	})

	logging.Debug("stretto search complete", logging.Fields{
		"id":      result.ID.String(),
		"entries": len(result.Entries),
	})
	return result, nil
}

func countUnprepared(classifications []counterpoint.Classification) int {
	n := 0
	for _, c := range classifications {
		if c.Type == counterpoint.DissonanceUnprepared {
			n++
		}
	}
	return n
}

func contraryRatio(motion counterpoint.MotionResult) float64 {
	if motion.Status != counterpoint.StatusOK || motion.Counts.Total == 0 {
		return 0
	}
	return motion.Counts.Contrary / motion.Counts.Total
}
