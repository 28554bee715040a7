package harmony

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/strettolab/contrapunto/algorithms/theory"
	"github.com/strettolab/contrapunto/logging"
)

// BeatHarmony is the inferred harmony at one metric beat. Assigned is false
// when the optimal path leaves the beat without a chord rather than forcing
// a spurious one.
type BeatHarmony struct {
	Beat        int          `json:"beat"`
	Root        int          `json:"root"`
	Quality     ChordQuality `json:"quality"`
	Name        string       `json:"name"`
	Score       float64      `json:"score"`
	ChainLength int          `json:"chain_length"`
	Assigned    bool         `json:"assigned"`
}

// InferenceResult is the per-beat harmony sequence covering the full
// duration of the input voice
type InferenceResult struct {
	Status     string        `json:"status"`
	Beats      []BeatHarmony `json:"beats"`
	TotalScore float64       `json:"total_score"`
}

// chordKey identifies one hypothesis in the sequence search
type chordKey struct {
	Root    int
	Quality ChordQuality
}

// candidate is a scored chord hypothesis for one beat
type candidate struct {
	key        chordKey
	name       string
	score      float64
	complexity int
}

// HarmonyAnalyzer infers the most plausible implied harmony per metric beat
// of a single voice, allowing one harmony to persist across several beats of
// arpeggiation or sustain.
type HarmonyAnalyzer struct {
	params Params
}

// NewHarmonyAnalyzer creates an analyzer with default parameters for a meter
func NewHarmonyAnalyzer(m theory.Meter) *HarmonyAnalyzer {
	return NewHarmonyAnalyzerWithParams(DefaultParams(m))
}

// NewHarmonyAnalyzerWithParams creates an analyzer with custom parameters
func NewHarmonyAnalyzerWithParams(params Params) *HarmonyAnalyzer {
	return &HarmonyAnalyzer{params: params}
}

// InferSequence segments the voice into beats, scores chord hypotheses per
// beat and searches for the best-scoring sequence with a forward dynamic
// program. Degenerate voices yield a not-applicable Status, never an error;
// an invalid meter is fatal.
func (ha *HarmonyAnalyzer) InferSequence(voice []theory.NoteEvent) (*InferenceResult, error) {
	if err := ha.params.Meter.Validate(); err != nil {
		return nil, err
	}
	if len(voice) == 0 {
		return &InferenceResult{Status: StatusEmpty}, nil
	}
	if len(voice) < 2 {
		return &InferenceResult{Status: StatusTooShort}, nil
	}

	beats := segmentByBeat(voice, ha.params.Meter)
	pools := ha.collectPools(beats)

	candidates := make([][]candidate, len(pools))
	for b, pool := range pools {
		candidates[b] = ha.generateCandidates(pool)
	}

	result := ha.searchSequence(candidates)

	logging.Debug("harmony inference complete", logging.Fields{
		"beats":       len(result.Beats),
		"total_score": result.TotalScore,
	})
	return result, nil
}

// beatPool is the salience-weighted note material heard at one beat,
// including decayed contributions from neighboring beats
type beatPool struct {
	salience  map[int]float64 // pitch class -> accumulated salience
	bassPitch int             // lowest contributing absolute pitch
	hasNotes  bool
}

func (ha *HarmonyAnalyzer) collectPools(beats [][]segment) []beatPool {
	pools := make([]beatPool, len(beats))
	for b := range beats {
		pool := beatPool{salience: make(map[int]float64)}
		for nb := b - ha.params.NeighborBeats; nb <= b+ha.params.NeighborBeats; nb++ {
			if nb < 0 || nb >= len(beats) {
				continue
			}
			distance := nb - b
			if distance < 0 {
				distance = -distance
			}
			for _, seg := range beats[nb] {
				sal := ha.salience(seg, distance)
				pc := ((seg.note.Pitch % 12) + 12) % 12
				pool.salience[pc] += sal
				if !pool.hasNotes || seg.note.Pitch < pool.bassPitch {
					pool.bassPitch = seg.note.Pitch
				}
				pool.hasNotes = true
			}
		}
		pools[b] = pool
	}
	return pools
}

// salience weighs one segment as harmonic evidence: longer notes on stronger
// positions approached by leap assert themselves most; material from nearby
// beats decays geometrically with distance.
func (ha *HarmonyAnalyzer) salience(seg segment, beatDistance int) float64 {
	p := ha.params
	base := (seg.duration - p.PassingNoteThreshold) * ha.metricMultiplier(seg.onset) * ha.approachMultiplier(seg.approach)
	if base < p.MinimumFloor {
		base = p.MinimumFloor
	}
	return base * math.Pow(p.DecayFactor, float64(beatDistance))
}

func (ha *HarmonyAnalyzer) metricMultiplier(onset float64) float64 {
	switch ha.params.Meter.MetricWeight(onset) {
	case theory.WeightDownbeat:
		return ha.params.DownbeatMultiplier
	case theory.WeightSecondary:
		return ha.params.SecondaryMultiplier
	case theory.WeightBeat:
		return ha.params.BeatMultiplier
	default:
		return ha.params.SubdivisionMultiplier
	}
}

func (ha *HarmonyAnalyzer) approachMultiplier(approach int) float64 {
	switch {
	case approach < 0:
		return ha.params.SkipMultiplier // first note: no approach evidence
	case approach <= 2 && approach > 0:
		return ha.params.StepMultiplier
	case approach == 5 || approach == 7 || approach == 12:
		return ha.params.LeapMultiplier
	default:
		return ha.params.SkipMultiplier
	}
}

// generateCandidates scores every admissible (root, quality) hypothesis for
// one beat's pool. At least two distinct pitch classes are needed before any
// hypothesis is entertained.
func (ha *HarmonyAnalyzer) generateCandidates(pool beatPool) []candidate {
	if len(pool.salience) < 2 {
		return nil
	}

	roots := make([]int, 0, len(pool.salience))
	for pc := range pool.salience {
		roots = append(roots, pc)
	}
	sort.Ints(roots)

	bassPC := ((pool.bassPitch % 12) + 12) % 12

	var out []candidate
	for _, root := range roots {
		for _, tmpl := range chordTemplates {
			if !requiredPresent(pool, root, tmpl.Required) {
				continue
			}
			score := ha.scoreCandidate(pool, root, tmpl, bassPC)
			out = append(out, candidate{
				key:        chordKey{Root: root, Quality: tmpl.Quality},
				name:       ChordName(root, tmpl.Quality),
				score:      score,
				complexity: tmpl.Complexity,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		if out[i].key.Root != out[j].key.Root {
			return out[i].key.Root < out[j].key.Root
		}
		return out[i].key.Quality < out[j].key.Quality
	})
	return out
}

func requiredPresent(pool beatPool, root int, required []int) bool {
	for _, r := range required {
		if _, ok := pool.salience[(root+r)%12]; !ok {
			return false
		}
	}
	return true
}

// scoreCandidate rewards matched chord tones by role, charges salient
// non-chord tones, then adjusts for the bass position
func (ha *HarmonyAnalyzer) scoreCandidate(pool beatPool, root int, tmpl ChordTemplate, bassPC int) float64 {
	p := ha.params

	matched := make([]float64, 0, len(pool.salience))
	score := 0.0
	for pc, sal := range pool.salience {
		rel := ((pc - root) % 12 + 12) % 12
		if containsInterval(tmpl.Intervals, rel) {
			matched = append(matched, sal*roleWeight(rel))
		} else if over := sal - p.NonChordToneFloor; over > 0 {
			score -= over
		}
	}
	score += floats.Sum(matched)

	bassRel := ((bassPC - root) % 12 + 12) % 12
	switch {
	case bassRel == 0:
		score *= p.RootBassBonus
	case bassRel == 7:
		score *= p.FifthBassPenalty
	case bassRel == tmpl.seventhInterval():
		score *= p.SeventhBassPenalty
	}
	return score
}

func containsInterval(intervals []int, rel int) bool {
	for _, iv := range intervals {
		if iv == rel {
			return true
		}
	}
	return false
}

// roleWeight ranks chord-tone roles as harmonic evidence
func roleWeight(rel int) float64 {
	switch rel {
	case 0:
		return 1.0 // root
	case 3, 4:
		return 0.9 // third
	case 6, 7, 8:
		return 0.7 // fifth
	case 9, 10, 11:
		return 0.8 // sixth or seventh
	default:
		return 0.6
	}
}

// dpCell is one state of the forward dynamic program: a specific hypothesis
// at a beat, or the no-chord state (index 0 of every beat's cell list)
type dpCell struct {
	assigned  bool
	key       chordKey
	name      string
	beatScore float64
	cum       float64
	chain     int
	prev      int
}

// searchSequence runs the forward dynamic program. Every candidate at every
// beat is evaluated against every predecessor state; a locally weaker
// hypothesis can win globally through the continuity bonus, so the search is
// never greedy per beat. The no-chord state inherits the best predecessor,
// letting ambiguous beats stay unassigned.
func (ha *HarmonyAnalyzer) searchSequence(candidates [][]candidate) *InferenceResult {
	p := ha.params
	numBeats := len(candidates)
	cells := make([][]dpCell, numBeats)

	for b := 0; b < numBeats; b++ {
		var prevCells []dpCell
		if b > 0 {
			prevCells = cells[b-1]
		}

		bestPrev, bestPrevCum := -1, 0.0
		for i, pc := range prevCells {
			if bestPrev < 0 || pc.cum > bestPrevCum {
				bestPrev, bestPrevCum = i, pc.cum
			}
		}

		row := []dpCell{{assigned: false, cum: bestPrevCum, prev: bestPrev}}

		for _, cand := range candidates[b] {
			gain := cand.score - float64(cand.complexity)*p.ComplexityPenalty

			cell := dpCell{
				assigned:  true,
				key:       cand.key,
				name:      cand.name,
				beatScore: cand.score,
				chain:     1,
				prev:      -1,
				cum:       gain,
			}
			if b > 0 {
				first := true
				for i, pc := range prevCells {
					cum := pc.cum + gain
					chain := 1
					if pc.assigned && pc.key == cand.key {
						cum += p.ContinuityBonus
						chain = pc.chain + 1
					}
					// ties resolve toward the longer chain for stable output
					if first || cum > cell.cum || (cum == cell.cum && chain > cell.chain) {
						cell.cum = cum
						cell.chain = chain
						cell.prev = i
						first = false
					}
				}
			}
			row = append(row, cell)
		}

		cells[b] = row
	}

	// backtrack from the best final state
	best := 0
	for i, c := range cells[numBeats-1] {
		if c.cum > cells[numBeats-1][best].cum {
			best = i
		}
	}

	result := &InferenceResult{
		Status:     StatusOK,
		Beats:      make([]BeatHarmony, numBeats),
		TotalScore: cells[numBeats-1][best].cum,
	}

	idx := best
	for b := numBeats - 1; b >= 0; b-- {
		cell := cells[b][idx]
		bh := BeatHarmony{Beat: b, Quality: ChordNone, Name: "none"}
		if cell.assigned {
			bh.Root = cell.key.Root
			bh.Quality = cell.key.Quality
			bh.Name = cell.name
			bh.Score = cell.beatScore
			bh.ChainLength = cell.chain
			bh.Assigned = true
		}
		result.Beats[b] = bh
		idx = cell.prev
		if idx < 0 {
			idx = 0
		}
	}

	return result
}
