package counterpoint

import (
	"fmt"
	"sort"

	"github.com/strettolab/contrapunto/algorithms/theory"
)

// ParallelViolation is one forbidden parallel-perfect motion: two perfect
// intervals of the same kind in direct succession, reached by similar motion.
type ParallelViolation struct {
	Onset       float64 `json:"onset"`
	NextOnset   float64 `json:"next_onset"`
	Class       int     `json:"class"`   // 5 for fifths, 1 for unisons/octaves
	Pitches     [4]int  `json:"pitches"` // fromA, fromB, toA, toB
	Description string  `json:"description"`
}

// CheckParallelPerfects scans a Simultaneity sequence for parallel perfect
// fifths, octaves and unisons. Oblique motion through or around a perfect
// interval is permitted; only similar motion between two perfect intervals
// of the same kind is flagged. Each physical motion is reported once even
// when reachable along several scan paths.
func CheckParallelPerfects(sims []Simultaneity) []ParallelViolation {
	// a long held interval shows up once per note pair, not once per tick
	type pairKey struct {
		aID, bID         int
		aPitch, bPitch   int
	}
	seen := make(map[pairKey]bool)
	dedup := make([]Simultaneity, 0, len(sims))
	for _, s := range sims {
		k := pairKey{s.NoteA.ID, s.NoteB.ID, s.NoteA.Pitch, s.NoteB.Pitch}
		if seen[k] {
			continue
		}
		seen[k] = true
		dedup = append(dedup, s)
	}

	sort.SliceStable(dedup, func(i, j int) bool {
		return dedup[i].Onset < dedup[j].Onset
	})

	reported := make(map[[4]int]bool)
	var violations []ParallelViolation

	for i, cur := range dedup {
		class := perfectClass(cur)
		if class == 0 || !cur.Consonant {
			continue
		}

		// next Simultaneity where BOTH voices have changed notes; skipped
		// entries are oblique motion and neither trigger nor break the check
		for j := i + 1; j < len(dedup); j++ {
			next := dedup[j]
			if next.NoteA.ID == cur.NoteA.ID || next.NoteB.ID == cur.NoteB.ID {
				continue
			}

			if perfectClass(next) == class && next.Consonant {
				dirA := sign(next.NoteA.Pitch - cur.NoteA.Pitch)
				dirB := sign(next.NoteB.Pitch - cur.NoteB.Pitch)
				if dirA != 0 && dirA == dirB {
					key := [4]int{cur.NoteA.Pitch, cur.NoteB.Pitch, next.NoteA.Pitch, next.NoteB.Pitch}
					if !reported[key] {
						reported[key] = true
						violations = append(violations, ParallelViolation{
							Onset:     cur.Onset,
							NextOnset: next.Onset,
							Class:     class,
							Pitches:   key,
							Description: fmt.Sprintf("parallel %s: %s/%s to %s/%s",
								kindName(class),
								theory.NoteName(cur.NoteA.Pitch), theory.NoteName(cur.NoteB.Pitch),
								theory.NoteName(next.NoteA.Pitch), theory.NoteName(next.NoteB.Pitch)),
						})
					}
				}
			}
			break
		}
	}

	return violations
}

// perfectClass folds unisons and octaves into one kind (1) and fifths into
// another (5); anything else is 0 and exempt from the parallel rule.
func perfectClass(s Simultaneity) int {
	if s.Interval.Quality != theory.IntervalPerfect {
		return 0
	}
	switch s.Interval.Class {
	case 1, 8:
		return 1
	case 5:
		return 5
	}
	return 0
}

func kindName(class int) string {
	if class == 5 {
		return "fifths"
	}
	return "octaves"
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
