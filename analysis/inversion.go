package analysis

import (
	"github.com/google/uuid"

	"github.com/strettolab/contrapunto/algorithms/counterpoint"
	"github.com/strettolab/contrapunto/algorithms/theory"
)

// InversionReport holds both orientations of a subject/countersubject pair.
// Invertible is true when the inverted orientation also stands: no parallel
// perfects and no unprepared dissonances.
type InversionReport struct {
	ID         uuid.UUID   `json:"id"`
	Status     string      `json:"status"`
	Original   *PairReport `json:"original"`
	Inverted   *PairReport `json:"inverted"`
	Invertible bool        `json:"invertible"`
}

// CheckInvertible tests invertible counterpoint at the octave: the
// countersubject is displaced an octave below the subject and the pair is
// re-analyzed in that orientation
func (a *Analyzer) CheckInvertible(subject, countersubject []theory.NoteEvent) (*InversionReport, error) {
	original, err := a.AnalyzePair(subject, countersubject)
	if err != nil {
		return nil, err
	}

	inverted, err := a.AnalyzePair(subject, theory.Transpose(countersubject, -12))
	if err != nil {
		return nil, err
	}

	report := &InversionReport{
		ID:       uuid.New(),
		Status:   original.Status,
		Original: original,
		Inverted: inverted,
	}
	if inverted.Status == counterpoint.StatusOK {
		report.Invertible = len(inverted.Violations) == 0 &&
			countUnprepared(inverted.Dissonances) == 0
	}
	return report, nil
}
