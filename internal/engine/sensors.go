package engine

import (
	"math"
	"time"

	"github.com/nocturnelabs/sleep-metrics/internal/domain"
)

const (
	// daytimeStartHour and daytimeEndHour bound the local hours treated as
	// daytime for the heart-rate dip baseline.
	daytimeStartHour = 8
	daytimeEndHour   = 20
)

// AverageInWindow is the arithmetic mean of sample values with timestamps
// inside [start, end], both bounds inclusive. Returns nil when no sample
// falls inside the window.
func AverageInWindow(samples []domain.SensorSample, start, end time.Time) *float64 {
	var sum float64
	var count int
	for _, s := range samples {
		if s.Timestamp.Before(start) || s.Timestamp.After(end) {
			continue
		}
		sum += s.Value
		count++
	}
	if count == 0 {
		return nil
	}
	avg := math.Round(sum/float64(count)*100) / 100
	return &avg
}

// HeartRateDip compares daytime and overnight heart rate for one calendar
// day of samples. Local hours [8, 20) are daytime, the rest night. The dip
// is the percentage drop from the daytime average, floored at zero so a
// night running hotter than the day reports 0 rather than a negative dip.
// Returns nil when either bucket is empty or the daytime average is zero.
func HeartRateDip(samples []domain.SensorSample, loc *time.Location) *float64 {
	if loc == nil {
		loc = time.UTC
	}

	var daySum, nightSum float64
	var dayCount, nightCount int
	for _, s := range samples {
		hour := s.Timestamp.In(loc).Hour()
		if hour >= daytimeStartHour && hour < daytimeEndHour {
			daySum += s.Value
			dayCount++
		} else {
			nightSum += s.Value
			nightCount++
		}
	}
	if dayCount == 0 || nightCount == 0 {
		return nil
	}

	dayAvg := daySum / float64(dayCount)
	if dayAvg == 0 {
		return nil
	}
	nightAvg := nightSum / float64(nightCount)

	dip := math.Max(0, (dayAvg-nightAvg)/dayAvg*100)
	dip = math.Round(dip*10) / 10
	return &dip
}
