package engine

import "time"

// ScoreInput carries the already-derived fields the quality scorer buckets.
// Nil pointers mean the underlying metric was unavailable for the night.
type ScoreInput struct {
	TotalSleep    time.Duration
	Efficiency    *float64
	DeepPct       *int
	REMPct        *int
	Consistency   *float64
	HeartRateDip  *float64
	AvgHRV        *float64
	Interruptions int
	HasData       bool
}

// QualityScore folds one night's metrics into a single 0-100 score using
// fixed buckets. Missing efficiency is skipped entirely; other missing
// inputs fall into their lowest bucket. A night with zero intervals has no
// score at all rather than a low one.
func QualityScore(in ScoreInput) *int {
	if !in.HasData {
		return nil
	}

	score := hoursPoints(in.TotalSleep)
	if in.Efficiency != nil {
		score += efficiencyPoints(*in.Efficiency)
	}
	score += deepPoints(in.DeepPct)
	score += remPoints(in.REMPct)
	score += consistencyPoints(in.Consistency)
	score += dipPoints(in.HeartRateDip)
	score += hrvPoints(in.AvgHRV)
	score -= in.Interruptions

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return &score
}

func hoursPoints(total time.Duration) int {
	h := total.Hours()
	switch {
	case h >= 7 && h <= 9:
		return 30
	case (h >= 6 && h < 7) || (h > 9 && h <= 10):
		return 20
	case h >= 5 && h < 6:
		return 10
	default:
		return 5
	}
}

func efficiencyPoints(eff float64) int {
	switch {
	case eff >= 85:
		return 20
	case eff >= 75:
		return 15
	case eff >= 65:
		return 10
	default:
		return 5
	}
}

func deepPoints(pct *int) int {
	if pct == nil {
		return 2
	}
	switch d := *pct; {
	case d >= 13 && d <= 23:
		return 15
	case d > 23:
		return 10
	case d >= 10:
		return 5
	default:
		return 2
	}
}

func remPoints(pct *int) int {
	if pct == nil {
		return 2
	}
	switch r := *pct; {
	case r >= 20 && r <= 25:
		return 15
	case r > 25:
		return 10
	case r >= 15:
		return 5
	default:
		return 2
	}
}

func consistencyPoints(score *float64) int {
	if score == nil {
		return 2
	}
	switch {
	case *score >= 80:
		return 10
	case *score >= 60:
		return 5
	default:
		return 2
	}
}

func dipPoints(dip *float64) int {
	if dip != nil && *dip >= 10 {
		return 5
	}
	return 2
}

func hrvPoints(hrv *float64) int {
	if hrv == nil {
		return 1
	}
	switch {
	case *hrv > 50:
		return 5
	case *hrv > 30:
		return 2
	default:
		return 1
	}
}
