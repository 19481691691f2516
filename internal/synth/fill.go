package synth

import (
	"time"

	"github.com/albapepper/teamarr/internal/model"
)

// fillIdleGaps inserts idle segments into every gap between consecutive
// busy segments (and before the first / after the last, bounded by the
// window), when idle filler is enabled. With idle disabled, gaps are left
// as-is — the non-overlap invariant only applies when fillers are enabled
//.
func fillIdleGaps(busy []segment, idleEnabled bool, windowStart, windowEnd time.Time) []segment {
	if !idleEnabled {
		return busy
	}

	out := make([]segment, 0, len(busy)*2+1)
	cursor := windowStart
	for _, s := range busy {
		if s.Start.After(cursor) {
			out = append(out, segment{Kind: model.SourceIdle, Start: cursor, Stop: s.Start})
		}
		out = append(out, s)
		if s.Stop.After(cursor) {
			cursor = s.Stop
		}
	}
	if windowEnd.After(cursor) {
		out = append(out, segment{Kind: model.SourceIdle, Start: cursor, Stop: windowEnd})
	}
	return out
}

// splitOversizedFillers breaks any non-game segment whose span exceeds
// maxProgramHours into equal-sized chunks at that limit; the final chunk
// may be shorter.
func splitOversizedFillers(segs []segment, maxProgramHours float64) []segment {
	if maxProgramHours <= 0 {
		return segs
	}
	maxDur := time.Duration(maxProgramHours * float64(time.Hour))

	out := make([]segment, 0, len(segs))
	for _, s := range segs {
		if s.Kind == model.SourceGame {
			out = append(out, s)
			continue
		}
		total := s.Stop.Sub(s.Start)
		if total <= maxDur {
			out = append(out, s)
			continue
		}
		cursor := s.Start
		for cursor.Before(s.Stop) {
			end := cursor.Add(maxDur)
			if end.After(s.Stop) {
				end = s.Stop
			}
			out = append(out, segment{Kind: s.Kind, Start: cursor, Stop: end, Game: s.Game})
			cursor = end
		}
	}
	return out
}
