package counterpoint

import (
	"sort"

	"github.com/strettolab/contrapunto/algorithms/theory"
)

// Simultaneity is an ephemeral pairing of two temporally overlapping notes,
// taken at the moment both are sounding. Sequences of Simultaneities are
// recomputed fresh on every analysis call and never cached; NoteA/NoteB keep
// the originating events' IDs so downstream components can tell whether a
// voice changed notes between two Simultaneities.
type Simultaneity struct {
	Onset        float64          `json:"onset"`
	NoteA        theory.NoteEvent `json:"note_a"`
	NoteB        theory.NoteEvent `json:"note_b"`
	Interval     theory.Interval  `json:"interval"`
	Consonant    bool             `json:"consonant"`
	MetricWeight float64          `json:"metric_weight"`
}

// FindSimultaneities pairs every temporally overlapping (noteA, noteB) and
// returns the pairings sorted by onset. Swapping the voice arguments yields
// the mirror image: same onsets and intervals with the note roles exchanged.
// The scan is O(|A|x|B|), fine for fugue subjects of a few dozen notes.
func FindSimultaneities(voiceA, voiceB []theory.NoteEvent, p Params) ([]Simultaneity, error) {
	if err := p.Meter.Validate(); err != nil {
		return nil, err
	}

	var sims []Simultaneity
	for _, a := range voiceA {
		for _, b := range voiceB {
			if !theory.TimeLess(a.Onset, b.End()) || !theory.TimeLess(b.Onset, a.End()) {
				continue
			}

			onset := a.Onset
			if b.Onset > onset {
				onset = b.Onset
			}

			iv := theory.Classify(a.Pitch - b.Pitch)
			sims = append(sims, Simultaneity{
				Onset:        onset,
				NoteA:        a,
				NoteB:        b,
				Interval:     iv,
				Consonant:    consonantUnder(iv, p),
				MetricWeight: p.Meter.MetricWeight(onset),
			})
		}
	}

	sort.SliceStable(sims, func(i, j int) bool {
		if !theory.TimeEq(sims[i].Onset, sims[j].Onset) {
			return sims[i].Onset < sims[j].Onset
		}
		if sims[i].NoteA.ID != sims[j].NoteA.ID {
			return sims[i].NoteA.ID < sims[j].NoteA.ID
		}
		return sims[i].NoteB.ID < sims[j].NoteB.ID
	})

	return sims, nil
}

// consonantUnder applies the configured fourth treatment on top of the
// strict interval rule
func consonantUnder(iv theory.Interval, p Params) bool {
	if iv.Class == 4 && iv.Quality == theory.IntervalPerfect {
		return !p.FourthIsDissonant
	}
	return iv.Consonant()
}
