package engine

import (
	"time"

	"github.com/nocturnelabs/sleep-metrics/internal/domain"
)

// EpochLength is the hypnogram bin width.
const EpochLength = 5 * time.Minute

// Epoch is one hypnogram cell: the dominant stage over a fixed window.
type Epoch struct {
	Start time.Time
	End   time.Time
	Stage domain.StageLabel
}

// Hypnogram resamples the timeline into fixed epochs spanning the earliest
// interval start to the latest interval end. Each epoch takes the stage
// with the greatest accumulated overlap; on a tie the stage that reached
// the winning total first keeps it. Epochs no interval overlaps are dropped
// rather than emitted as gaps.
func Hypnogram(t *Timeline) []Epoch {
	first, last, ok := t.Span()
	if !ok || !last.After(first) {
		return nil
	}

	var epochs []Epoch
	for cursor := first; cursor.Before(last); cursor = cursor.Add(EpochLength) {
		epochEnd := cursor.Add(EpochLength)
		if stage, covered := dominantStage(t, cursor, epochEnd); covered {
			epochs = append(epochs, Epoch{Start: cursor, End: epochEnd, Stage: stage})
		}
	}
	return epochs
}

// dominantStage accumulates per-stage overlap with [start, end) and picks
// the winner. covered is false when nothing overlaps the window.
func dominantStage(t *Timeline, start, end time.Time) (domain.StageLabel, bool) {
	var (
		winner    domain.StageLabel
		winnerDur time.Duration
		covered   bool
	)
	coverage := make(map[domain.StageLabel]time.Duration)

	for _, iv := range t.Intervals() {
		overlap := overlapDuration(iv.Start, iv.End(), start, end)
		if overlap <= 0 {
			continue
		}
		covered = true
		coverage[iv.Stage] += overlap
		// strict greater-than keeps the earliest stage on equal totals
		if coverage[iv.Stage] > winnerDur {
			winnerDur = coverage[iv.Stage]
			winner = iv.Stage
		}
	}
	return winner, covered
}

// overlapDuration returns the length of the intersection of two half-open
// windows, or zero when they do not intersect.
func overlapDuration(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}
