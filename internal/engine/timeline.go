package engine

import (
	"sort"
	"time"

	"github.com/nocturnelabs/sleep-metrics/internal/domain"
)

// Timeline is an immutable, chronologically sorted view over one night's
// stage intervals. Overlapping intervals are kept as reported; no
// de-duplication or overlap resolution happens here.
type Timeline struct {
	intervals []domain.SleepInterval
}

// NewTimeline copies, validates and sorts the given intervals. Construction
// fails fast on a negative duration or an unknown stage; zero-duration
// intervals are kept. An empty input yields a valid empty timeline.
func NewTimeline(intervals []domain.SleepInterval) (*Timeline, error) {
	sorted := make([]domain.SleepInterval, len(intervals))
	for i, iv := range intervals {
		if iv.Duration < 0 {
			return nil, domain.ErrNegativeDuration
		}
		if !iv.Stage.Valid() {
			return nil, domain.ErrInvalidStage
		}
		sorted[i] = iv
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return &Timeline{intervals: sorted}, nil
}

// Len returns the number of intervals in the timeline.
func (t *Timeline) Len() int {
	return len(t.intervals)
}

// Intervals returns the intervals sorted ascending by start. Callers must
// not mutate the returned slice.
func (t *Timeline) Intervals() []domain.SleepInterval {
	return t.intervals
}

// DurationFor sums the reported durations of intervals whose stage is in
// the given set. Overlaps are summed as-is.
func (t *Timeline) DurationFor(stages ...domain.StageLabel) time.Duration {
	var total time.Duration
	for _, iv := range t.intervals {
		if stageIn(iv.Stage, stages) {
			total += iv.Duration
		}
	}
	return total
}

// Bounds returns the earliest start and latest end among intervals whose
// stage is in the given set. ok is false when no interval matches.
func (t *Timeline) Bounds(stages ...domain.StageLabel) (start, end time.Time, ok bool) {
	for _, iv := range t.intervals {
		if !stageIn(iv.Stage, stages) {
			continue
		}
		if !ok || iv.Start.Before(start) {
			start = iv.Start
		}
		if ivEnd := iv.End(); !ok || ivEnd.After(end) {
			end = ivEnd
		}
		ok = true
	}
	return start, end, ok
}

// Span returns the bounds over every interval regardless of stage.
func (t *Timeline) Span() (start, end time.Time, ok bool) {
	return t.Bounds(domain.StageInBed, domain.StageAwake, domain.StageLight, domain.StageDeep, domain.StageREM)
}

// SleepWindow returns the bounds over non-awake intervals: the window used
// for time-in-bed, sensor averaging and midpoint math.
func (t *Timeline) SleepWindow() (start, end time.Time, ok bool) {
	return t.Bounds(domain.StageInBed, domain.StageLight, domain.StageDeep, domain.StageREM)
}

// AsleepDuration sums light, deep and REM time.
func (t *Timeline) AsleepDuration() time.Duration {
	return t.DurationFor(domain.StageLight, domain.StageDeep, domain.StageREM)
}

func stageIn(stage domain.StageLabel, set []domain.StageLabel) bool {
	for _, s := range set {
		if stage == s {
			return true
		}
	}
	return false
}
