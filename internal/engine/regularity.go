package engine

import (
	"math"
	"time"
)

const (
	minutesPerDay = 24 * 60

	// consistencySpreadMinutes is the average onset spread that scores zero.
	consistencySpreadMinutes = 30.0

	// TargetSleep is the nightly duration sleep debt is measured against.
	TargetSleep = 8 * time.Hour
)

// DayTimeline pairs a local day start with that day's timeline. A night is
// attributed to the calendar day it ends on, so "Tuesday" holds the
// Monday-to-Tuesday sleep.
type DayTimeline struct {
	DayStart time.Time
	Timeline *Timeline
}

// WeekMetrics holds the cross-night derivations over a trailing window of
// consecutive days, oldest first.
type WeekMetrics struct {
	OnsetConsistency *float64
	RegularityIndex  *float64
	SleepDebt        time.Duration
	SocialJetLag     time.Duration
}

// AnalyzeWeek derives the cross-night metrics over the window. Days with a
// nil or empty timeline count as fully awake for the regularity index, are
// skipped when collecting onsets and midpoints, and contribute their full
// shortfall to sleep debt.
func AnalyzeWeek(days []DayTimeline) WeekMetrics {
	if len(days) == 0 {
		return WeekMetrics{}
	}
	return WeekMetrics{
		OnsetConsistency: onsetConsistency(days),
		RegularityIndex:  regularityIndex(days),
		SleepDebt:        sleepDebt(days),
		SocialJetLag:     socialJetLag(days),
	}
}

// onsetConsistency scores how tightly sleep onsets cluster across the
// window. Each onset after the first chronologically is compared to the
// first as a circular minute-of-day difference; the average spread maps
// linearly so that 30 minutes scores zero. Needs at least two onsets.
func onsetConsistency(days []DayTimeline) *float64 {
	var onsets []float64
	for _, day := range days {
		if day.Timeline == nil {
			continue
		}
		onset := onsetAt(day.Timeline)
		if onset == nil {
			continue
		}
		onsets = append(onsets, minuteOfDay(*onset, day.DayStart))
	}
	if len(onsets) < 2 {
		return nil
	}

	var total float64
	for _, other := range onsets[1:] {
		total += circularMinuteDiff(onsets[0], other)
	}
	avgDiff := total / float64(len(onsets)-1)

	score := math.Max(0, 100-avgDiff/consistencySpreadMinutes*100)
	score = math.Min(score, 100)
	score = math.Round(score*10) / 10
	return &score
}

// regularityIndex is the percentage of minute slots whose asleep state
// agrees across every unordered pair of days. Each day is a 1440-slot
// bitmap where a slot is true when any asleep-stage interval covers it.
func regularityIndex(days []DayTimeline) *float64 {
	if len(days) < 2 {
		return nil
	}

	bitmaps := make([][minutesPerDay]bool, len(days))
	for i, day := range days {
		bitmaps[i] = asleepBitmap(day.Timeline, day.DayStart)
	}

	var agreements, total int
	for i := 0; i < len(bitmaps); i++ {
		for j := i + 1; j < len(bitmaps); j++ {
			for m := 0; m < minutesPerDay; m++ {
				if bitmaps[i][m] == bitmaps[j][m] {
					agreements++
				}
				total++
			}
		}
	}

	sri := float64(agreements) / float64(total) * 100
	sri = math.Round(sri*10) / 10
	return &sri
}

// asleepBitmap marks every minute of the day window [dayStart, dayStart+24h)
// covered by an asleep-stage interval. Interval parts outside the day are
// clipped.
func asleepBitmap(t *Timeline, dayStart time.Time) [minutesPerDay]bool {
	var bitmap [minutesPerDay]bool
	if t == nil {
		return bitmap
	}

	dayEnd := dayStart.Add(24 * time.Hour)
	for _, iv := range t.Intervals() {
		if !iv.Stage.Asleep() {
			continue
		}
		start := iv.Start
		if start.Before(dayStart) {
			start = dayStart
		}
		end := iv.End()
		if end.After(dayEnd) {
			end = dayEnd
		}
		if !end.After(start) {
			continue
		}

		first := int(start.Sub(dayStart) / time.Minute)
		last := int(math.Ceil(end.Sub(dayStart).Minutes()))
		if last > minutesPerDay {
			last = minutesPerDay
		}
		for m := first; m < last; m++ {
			bitmap[m] = true
		}
	}
	return bitmap
}

// sleepDebt sums the nightly shortfall against the target. Oversleeping
// reduces the total, so it can go negative.
func sleepDebt(days []DayTimeline) time.Duration {
	var debt time.Duration
	for _, day := range days {
		var asleep time.Duration
		if day.Timeline != nil {
			asleep = day.Timeline.AsleepDuration()
		}
		debt += TargetSleep - asleep
	}
	return debt
}

// socialJetLag is the absolute gap between the average weekday and weekend
// sleep midpoints, with midpoints taken as absolute timestamps. A bucket
// with no nights averages to zero rather than dropping out, which inflates
// the gap for partial weeks.
func socialJetLag(days []DayTimeline) time.Duration {
	var weekdaySum, weekendSum float64
	var weekdayCount, weekendCount int

	for _, day := range days {
		if day.Timeline == nil {
			continue
		}
		start, end, ok := day.Timeline.SleepWindow()
		if !ok {
			continue
		}
		mid := start.Add(end.Sub(start) / 2)
		midSeconds := float64(mid.Unix())

		switch day.DayStart.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum += midSeconds
			weekendCount++
		default:
			weekdaySum += midSeconds
			weekdayCount++
		}
	}

	var weekdayAvg, weekendAvg float64
	if weekdayCount > 0 {
		weekdayAvg = weekdaySum / float64(weekdayCount)
	}
	if weekendCount > 0 {
		weekendAvg = weekendSum / float64(weekendCount)
	}

	gapSeconds := math.Abs(weekdayAvg - weekendAvg)
	// convert through integer milliseconds; a direct float-to-Duration cast
	// loses precision once the gap spans days
	return time.Duration(math.Round(gapSeconds*1000)) * time.Millisecond
}

// minuteOfDay converts a timestamp to fractional minutes after local
// midnight in the day-start location.
func minuteOfDay(ts time.Time, dayStart time.Time) float64 {
	local := ts.In(dayStart.Location())
	return float64(local.Hour()*60+local.Minute()) + float64(local.Second())/60
}

// circularMinuteDiff measures wrap-around distance between two minutes of
// day, so 23:50 and 00:10 are 20 minutes apart.
func circularMinuteDiff(a, b float64) float64 {
	diff := math.Abs(a - b)
	return math.Min(diff, minutesPerDay-diff)
}
