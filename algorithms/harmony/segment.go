package harmony

import (
	"math"

	"github.com/strettolab/contrapunto/algorithms/theory"
)

// segment is the portion of one note event falling inside one metric beat.
// A sustained note contributes one segment to every beat it spans; the
// originating note's ID travels with every fragment.
type segment struct {
	note     theory.NoteEvent
	beat     int
	onset    float64
	duration float64
	approach int // absolute semitone distance from the previous melodic note, -1 for the first
}

// segmentByBeat splits every note at beat boundaries and groups the
// fragments per beat. Separate repeated attacks of the same pitch with no
// gap re-merge into one segment; boundary fragments of one sustained note
// stay split, they are how a long note reaches several beats.
func segmentByBeat(voice []theory.NoteEvent, m theory.Meter) [][]segment {
	beatDur := m.BeatDuration()
	_, end := theory.VoiceSpan(voice)
	numBeats := int(math.Ceil(end/beatDur - theory.TimeTolerance))
	if numBeats < 1 {
		numBeats = 1
	}

	beats := make([][]segment, numBeats)
	for i, n := range voice {
		approach := -1
		if i > 0 {
			approach = n.Pitch - voice[i-1].Pitch
			if approach < 0 {
				approach = -approach
			}
		}

		t := n.Onset
		for theory.TimeLess(t, n.End()) {
			b := int((t + theory.TimeTolerance) / beatDur)
			if b >= numBeats {
				break
			}
			segEnd := math.Min(n.End(), float64(b+1)*beatDur)
			beats[b] = append(beats[b], segment{
				note:     n,
				beat:     b,
				onset:    t,
				duration: segEnd - t,
				approach: approach,
			})
			t = segEnd
		}
	}

	for b := range beats {
		beats[b] = mergeRepeatedAttacks(beats[b])
	}
	return beats
}

// mergeRepeatedAttacks joins contiguous same-pitch segments that come from
// different notes, so re-struck pitches weigh like one sustained tone
func mergeRepeatedAttacks(segs []segment) []segment {
	if len(segs) < 2 {
		return segs
	}

	out := segs[:1]
	for _, s := range segs[1:] {
		last := &out[len(out)-1]
		if s.note.ID != last.note.ID &&
			s.note.Pitch == last.note.Pitch &&
			theory.TimeEq(last.onset+last.duration, s.onset) {
			last.duration += s.duration
			continue
		}
		out = append(out, s)
	}
	return out
}
