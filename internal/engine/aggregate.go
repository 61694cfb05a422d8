package engine

import (
	"math"
	"time"

	"github.com/nocturnelabs/sleep-metrics/internal/domain"
)

// NightAggregate holds the per-night durations, shares and counters derived
// from one timeline. Pointer fields are nil when their inputs are missing
// or a denominator is zero; zero is a real value and is never used as a
// stand-in for "unknown".
type NightAggregate struct {
	Light     time.Duration
	Deep      time.Duration
	REM       time.Duration
	Asleep    time.Duration
	TimeInBed time.Duration

	LightPct *int
	DeepPct  *int
	REMPct   *int

	Efficiency *float64
	OnsetAt    *time.Time

	Interruptions int
	Transitions   int
}

// Aggregate derives the per-night numbers from a timeline. An empty
// timeline yields zero durations and nil optionals.
func Aggregate(t *Timeline) NightAggregate {
	agg := NightAggregate{
		Light: t.DurationFor(domain.StageLight),
		Deep:  t.DurationFor(domain.StageDeep),
		REM:   t.DurationFor(domain.StageREM),
	}
	agg.Asleep = agg.Light + agg.Deep + agg.REM

	if start, end, ok := t.SleepWindow(); ok {
		agg.TimeInBed = end.Sub(start)
	}

	if agg.Asleep > 0 {
		agg.LightPct = stageShare(agg.Light, agg.Asleep)
		agg.DeepPct = stageShare(agg.Deep, agg.Asleep)
		agg.REMPct = stageShare(agg.REM, agg.Asleep)
	}

	if agg.TimeInBed > 0 {
		// overlapping provider intervals can sum past the bounding window,
		// so cap at 100
		eff := agg.Asleep.Seconds() / agg.TimeInBed.Seconds() * 100
		eff = math.Min(eff, 100)
		eff = math.Round(eff*10) / 10
		agg.Efficiency = &eff
	}

	agg.OnsetAt = onsetAt(t)
	agg.Interruptions = countInterruptions(t)
	agg.Transitions = countTransitions(t)
	return agg
}

// stageShare returns part/total as a percentage rounded to the nearest
// integer.
func stageShare(part, total time.Duration) *int {
	pct := int(math.Round(part.Seconds() / total.Seconds() * 100))
	return &pct
}

// onsetAt returns the start of the earliest asleep-stage interval. The
// timeline is already sorted, so the first match wins.
func onsetAt(t *Timeline) *time.Time {
	for _, iv := range t.Intervals() {
		if iv.Stage.Asleep() {
			onset := iv.Start
			return &onset
		}
	}
	return nil
}

// countInterruptions counts adjacent sleep-to-awake transitions. Only that
// direction counts; waking up is an interruption, falling asleep is not.
func countInterruptions(t *Timeline) int {
	intervals := t.Intervals()
	count := 0
	for i := 1; i < len(intervals); i++ {
		if intervals[i-1].Stage.Asleep() && intervals[i].Stage == domain.StageAwake {
			count++
		}
	}
	return count
}

// countTransitions counts adjacent pairs whose stage differs, regardless of
// direction.
func countTransitions(t *Timeline) int {
	intervals := t.Intervals()
	count := 0
	for i := 1; i < len(intervals); i++ {
		if intervals[i].Stage != intervals[i-1].Stage {
			count++
		}
	}
	return count
}
