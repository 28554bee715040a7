package counterpoint

import (
	"fmt"

	"github.com/strettolab/contrapunto/algorithms/theory"
)

// DissonanceType is the species-counterpoint role of a dissonant
// Simultaneity
type DissonanceType int

const (
	DissonanceConsonant DissonanceType = iota
	DissonanceSuspension
	DissonancePassing
	DissonanceNeighbor
	DissonanceAnticipation
	DissonanceAppoggiatura
	DissonanceUnprepared
)

func (d DissonanceType) String() string {
	switch d {
	case DissonanceConsonant:
		return "consonant"
	case DissonanceSuspension:
		return "suspension"
	case DissonancePassing:
		return "passing tone"
	case DissonanceNeighbor:
		return "neighbor tone"
	case DissonanceAnticipation:
		return "anticipation"
	case DissonanceAppoggiatura:
		return "appoggiatura"
	case DissonanceUnprepared:
		return "unprepared"
	default:
		return "unknown"
	}
}

// Classification is the species judgment for one Simultaneity. Voice is 1 or
// 2 for voice-specific dissonances, 0 otherwise.
type Classification struct {
	Onset       float64        `json:"onset"`
	Type        DissonanceType `json:"type"`
	Voice       int            `json:"voice,omitempty"`
	Description string         `json:"description"`
}

// ruleContext is the melodic neighborhood of one voice at one Simultaneity.
// Nil members mean the neighbor does not exist.
type ruleContext struct {
	sim      Simultaneity
	prevSim  *Simultaneity
	nextSim  *Simultaneity
	note     theory.NoteEvent
	prevNote *theory.NoteEvent
	nextNote *theory.NoteEvent

	// this voice's note at prevSim; equals note for a held preparation
	prevSimNote *theory.NoteEvent
}

// speciesRule pairs a dissonance type with its predicate. Precedence is the
// order of the rules slice; the first match wins.
type speciesRule struct {
	kind  DissonanceType
	match func(ruleContext) bool
}

var speciesRules = []speciesRule{
	{DissonanceSuspension, matchSuspension},
	{DissonancePassing, matchPassingTone},
	{DissonanceNeighbor, matchNeighborTone},
	{DissonanceAnticipation, matchAnticipation},
	{DissonanceAppoggiatura, matchAppoggiatura},
}

// The dissonant note was prepared: the voice already sounded the same pitch
// at the preceding Simultaneity, which was consonant (held over or
// re-struck), and it resolves down by step.
func matchSuspension(c ruleContext) bool {
	if c.nextNote == nil || c.prevSim == nil || c.prevSimNote == nil {
		return false
	}
	if c.note.Pitch != c.prevSimNote.Pitch || !c.prevSim.Consonant {
		return false
	}
	drop := c.note.Pitch - c.nextNote.Pitch
	return drop >= 1 && drop <= 2
}

// A weak-beat note inside a monotonic three-note stepwise run
func matchPassingTone(c ruleContext) bool {
	if c.sim.MetricWeight >= theory.WeightSecondary {
		return false
	}
	if c.prevNote == nil || c.nextNote == nil {
		return false
	}
	in := c.note.Pitch - c.prevNote.Pitch
	out := c.nextNote.Pitch - c.note.Pitch
	return isStep(in) && isStep(out) && sign(in) == sign(out)
}

// A weak-beat step away from and back to the same pitch
func matchNeighborTone(c ruleContext) bool {
	if c.sim.MetricWeight >= theory.WeightSecondary {
		return false
	}
	if c.prevNote == nil || c.nextNote == nil {
		return false
	}
	return c.prevNote.Pitch == c.nextNote.Pitch && isStep(c.note.Pitch-c.prevNote.Pitch)
}

// The dissonant note arrives early at the pitch of the consonance that
// follows it
func matchAnticipation(c ruleContext) bool {
	if c.sim.MetricWeight >= theory.WeightBeat {
		return false
	}
	if c.nextNote == nil || c.nextSim == nil {
		return false
	}
	return c.note.Pitch == c.nextNote.Pitch && c.nextSim.Consonant
}

// A strong-beat dissonance approached by leap and resolved by step
func matchAppoggiatura(c ruleContext) bool {
	if c.sim.MetricWeight < theory.WeightBeat {
		return false
	}
	if c.prevNote == nil || c.nextNote == nil {
		return false
	}
	leap := c.note.Pitch - c.prevNote.Pitch
	resolve := c.nextNote.Pitch - c.note.Pitch
	return abs(leap) > 2 && isStep(resolve)
}

func isStep(delta int) bool {
	a := abs(delta)
	return a >= 1 && a <= 2
}

// ClassifySimultaneity labels one Simultaneity. Consonant Simultaneities
// classify immediately; for a dissonance the rules run in priority order,
// voice 1 first, then voice 2, and the first match wins. Nothing matching is
// an unprepared dissonance.
func ClassifySimultaneity(sim Simultaneity, index int, sims []Simultaneity, voiceA, voiceB []theory.NoteEvent) Classification {
	if sim.Consonant {
		return Classification{
			Onset:       sim.Onset,
			Type:        DissonanceConsonant,
			Description: sim.Interval.Name(),
		}
	}

	var prevSim, nextSim *Simultaneity
	if index > 0 {
		prevSim = &sims[index-1]
	}
	if index+1 < len(sims) {
		nextSim = &sims[index+1]
	}

	for voice := 1; voice <= 2; voice++ {
		note, notes := sim.NoteA, voiceA
		if voice == 2 {
			note, notes = sim.NoteB, voiceB
		}

		ctx := ruleContext{
			sim:      sim,
			prevSim:  prevSim,
			nextSim:  nextSim,
			note:     note,
			prevNote: melodicNeighbor(notes, note.ID, -1),
			nextNote: melodicNeighbor(notes, note.ID, +1),
		}
		if prevSim != nil {
			if voice == 1 {
				ctx.prevSimNote = &prevSim.NoteA
			} else {
				ctx.prevSimNote = &prevSim.NoteB
			}
		}

		for _, rule := range speciesRules {
			if rule.match(ctx) {
				return Classification{
					Onset: sim.Onset,
					Type:  rule.kind,
					Voice: voice,
					Description: fmt.Sprintf("%s in voice %d over %s",
						rule.kind, voice, sim.Interval.Name()),
				}
			}
		}
	}

	return Classification{
		Onset:       sim.Onset,
		Type:        DissonanceUnprepared,
		Description: fmt.Sprintf("unprepared %s", sim.Interval.Name()),
	}
}

// ClassifyDissonances labels every dissonant Simultaneity in the sequence,
// one Classification per Simultaneity.
func ClassifyDissonances(sims []Simultaneity, voiceA, voiceB []theory.NoteEvent) []Classification {
	var out []Classification
	for i, sim := range sims {
		if sim.Consonant {
			continue
		}
		out = append(out, ClassifySimultaneity(sim, i, sims, voiceA, voiceB))
	}
	return out
}

// melodicNeighbor finds a voice's previous or next note relative to the note
// with the given ID. IDs are the voice's onset-ordered indexes.
func melodicNeighbor(voice []theory.NoteEvent, id, direction int) *theory.NoteEvent {
	for i := range voice {
		if voice[i].ID == id {
			j := i + direction
			if j < 0 || j >= len(voice) {
				return nil
			}
			return &voice[j]
		}
	}
	return nil
}
