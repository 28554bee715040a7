package counterpoint

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/strettolab/contrapunto/algorithms/theory"
)

// MotionType labels the melodic relationship between two adjacent
// Simultaneities
type MotionType int

const (
	MotionStatic MotionType = iota
	MotionOblique
	MotionContrary
	MotionParallel
	MotionSimilarStep
	MotionSimilarSameType
	MotionSimilar
)

func (t MotionType) String() string {
	switch t {
	case MotionStatic:
		return "static"
	case MotionOblique:
		return "oblique"
	case MotionContrary:
		return "contrary"
	case MotionParallel:
		return "parallel"
	case MotionSimilarStep:
		return "similar_step"
	case MotionSimilarSameType:
		return "similar_same_type"
	case MotionSimilar:
		return "similar"
	default:
		return "unknown"
	}
}

// Transition is one adjacent Simultaneity pair with its motion label. For an
// oblique transition that the asynchronous reassessment split, Reassessed is
// set, ObliqueFraction holds the part that stays oblique, and ReassignedTo
// names where the rest went.
type Transition struct {
	Onset  float64    `json:"onset"` // onset of the later simultaneity
	Type   MotionType `json:"type"`
	AMoved bool       `json:"a_moved"`
	BMoved bool       `json:"b_moved"`
	ADelta int        `json:"a_delta"`
	BDelta int        `json:"b_delta"`

	Reassessed      bool       `json:"reassessed,omitempty"`
	ObliqueFraction float64    `json:"oblique_fraction"`
	ReassignedTo    MotionType `json:"reassigned_to,omitempty"`
}

// Counts aggregates motion over all non-static transitions. Reassessed
// oblique transitions contribute fractionally to two categories, but Total
// is always exactly the non-static transition count.
type Counts struct {
	Contrary float64 `json:"contrary"`
	Oblique  float64 `json:"oblique"`
	Similar  float64 `json:"similar"`
	Parallel float64 `json:"parallel"`
	Static   int     `json:"static"`
	Total    float64 `json:"total"`
}

// MotionResult is the motion classifier's output for one voice pair
type MotionResult struct {
	Status      string       `json:"status"`
	Window      float64      `json:"window"`
	Transitions []Transition `json:"transitions"`
	Counts      Counts       `json:"counts"`
}

// ClassifyMotions labels every adjacent Simultaneity pair and then
// redistributes oblique transitions that are really near-simultaneous
// two-voice motion quantized apart by the onset grid. The result is
// symmetric under voice swap and conserves the transition count exactly.
func ClassifyMotions(sims []Simultaneity, voiceA, voiceB []theory.NoteEvent, p Params) MotionResult {
	if len(sims) == 0 {
		return MotionResult{Status: StatusEmpty}
	}
	if len(sims) < 2 {
		return MotionResult{Status: StatusTooShort}
	}

	window := p.windowFor(len(voiceA), len(voiceB))
	transitions := make([]Transition, 0, len(sims)-1)

	for i := 1; i < len(sims); i++ {
		prev, cur := sims[i-1], sims[i]

		aMoved := cur.NoteA.ID != prev.NoteA.ID && cur.NoteA.Pitch != prev.NoteA.Pitch
		bMoved := cur.NoteB.ID != prev.NoteB.ID && cur.NoteB.Pitch != prev.NoteB.Pitch

		tr := Transition{
			Onset:           cur.Onset,
			AMoved:          aMoved,
			BMoved:          bMoved,
			ObliqueFraction: 1,
		}
		if aMoved {
			tr.ADelta = cur.NoteA.Pitch - prev.NoteA.Pitch
		}
		if bMoved {
			tr.BDelta = cur.NoteB.Pitch - prev.NoteB.Pitch
		}
		tr.Type = classifyTransition(aMoved, bMoved, tr.ADelta, tr.BDelta)
		transitions = append(transitions, tr)
	}

	reassessObliques(transitions, window)

	return MotionResult{
		Status:      StatusOK,
		Window:      window,
		Transitions: transitions,
		Counts:      tallyCounts(transitions),
	}
}

func classifyTransition(aMoved, bMoved bool, aDelta, bDelta int) MotionType {
	switch {
	case !aMoved && !bMoved:
		return MotionStatic
	case aMoved != bMoved:
		return MotionOblique
	}

	if sign(aDelta) != sign(bDelta) {
		return MotionContrary
	}

	absA, absB := abs(aDelta), abs(bDelta)
	switch {
	case absA == absB:
		return MotionParallel
	case absA <= 2 || absB <= 2:
		return MotionSimilarStep
	case leapBucket(absA) == leapBucket(absB):
		return MotionSimilarSameType
	default:
		return MotionSimilar
	}
}

// leapBucket groups interval sizes: step, skip, perfect leap, large leap,
// octave
func leapBucket(semitones int) int {
	switch {
	case semitones <= 2:
		return 0
	case semitones <= 4:
		return 1
	case semitones == 5 || semitones == 7:
		return 2
	case semitones == 12:
		return 4
	default:
		return 3
	}
}

// reassessObliques splits each raw oblique transition whose counterpart
// motion in the other voice happens within the window. The split is
// proportional to the time offset, so the transition total is conserved.
// Moves of the same voice never pair up; only cross-voice proximity counts.
// Of two equidistant candidates the earlier onset wins.
func reassessObliques(transitions []Transition, window float64) {
	for i := range transitions {
		tr := &transitions[i]
		if tr.Type != MotionOblique {
			continue
		}

		movedDelta := tr.ADelta
		otherIsB := true
		if tr.BMoved {
			movedDelta = tr.BDelta
			otherIsB = false
		}

		best := -1
		bestOffset := math.MaxFloat64
		for j := range transitions {
			if j == i {
				continue
			}
			other := transitions[j]
			if (otherIsB && !other.BMoved) || (!otherIsB && !other.AMoved) {
				continue
			}
			offset := math.Abs(other.Onset - tr.Onset)
			better := offset < bestOffset-theory.TimeTolerance
			tie := best >= 0 && theory.TimeEq(offset, bestOffset) && other.Onset < transitions[best].Onset
			if best < 0 || better || tie {
				best = j
				bestOffset = offset
			}
		}

		if best < 0 || bestOffset >= window-theory.TimeTolerance {
			continue
		}

		otherDelta := transitions[best].ADelta
		if otherIsB {
			otherDelta = transitions[best].BDelta
		}

		tr.Reassessed = true
		tr.ObliqueFraction = bestOffset / window
		tr.ReassignedTo = combinedMotion(movedDelta, otherDelta)
	}
}

// combinedMotion compares two separately-timed moves as if simultaneous
func combinedMotion(d1, d2 int) MotionType {
	if sign(d1) != sign(d2) {
		return MotionContrary
	}
	if abs(d1) == abs(d2) {
		return MotionParallel
	}
	return MotionSimilar
}

func tallyCounts(transitions []Transition) Counts {
	var c Counts
	addTo := func(t MotionType, amount float64) {
		switch t {
		case MotionContrary:
			c.Contrary += amount
		case MotionParallel:
			c.Parallel += amount
		case MotionOblique:
			c.Oblique += amount
		default:
			c.Similar += amount
		}
	}

	for _, tr := range transitions {
		switch {
		case tr.Type == MotionStatic:
			c.Static++
		case tr.Type == MotionOblique && tr.Reassessed:
			c.Oblique += tr.ObliqueFraction
			addTo(tr.ReassignedTo, 1-tr.ObliqueFraction)
		default:
			addTo(tr.Type, 1)
		}
	}

	c.Total = floats.Sum([]float64{c.Contrary, c.Oblique, c.Similar, c.Parallel})
	return c
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
