package engine

import (
	"testing"
	"time"

	"github.com/nocturnelabs/sleep-metrics/internal/domain"
)

// nightFor builds a DayTimeline whose sleep runs from the previous evening
// into the morning of day.
func nightFor(t *testing.T, day time.Time, bedtimeHour, bedtimeMin, durMin int, stage domain.StageLabel) DayTimeline {
	t.Helper()
	start := day.AddDate(0, 0, -1).Add(time.Duration(bedtimeHour)*time.Hour + time.Duration(bedtimeMin)*time.Minute)
	return DayTimeline{
		DayStart: day,
		Timeline: mustTimeline(t, []domain.SleepInterval{{
			Start:    start,
			Duration: time.Duration(durMin) * time.Minute,
			Stage:    stage,
		}}),
	}
}

func emptyDay(t *testing.T, day time.Time) DayTimeline {
	t.Helper()
	return DayTimeline{DayStart: day, Timeline: mustTimeline(t, nil)}
}

func TestOnsetConsistencyIdenticalOnsets(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	days := []DayTimeline{
		nightFor(t, mon, 23, 0, 480, domain.StageLight),
		nightFor(t, mon.AddDate(0, 0, 1), 23, 0, 480, domain.StageLight),
		nightFor(t, mon.AddDate(0, 0, 2), 23, 0, 480, domain.StageLight),
	}

	week := AnalyzeWeek(days)
	if week.OnsetConsistency == nil {
		t.Fatal("expected a consistency score")
	}
	if *week.OnsetConsistency != 100 {
		t.Errorf("consistency = %v, want 100", *week.OnsetConsistency)
	}
}

func TestOnsetConsistencyThirtyMinuteSpread(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	// two onsets exactly 30 minutes apart score zero
	days := []DayTimeline{
		nightFor(t, mon, 23, 0, 480, domain.StageLight),
		nightFor(t, mon.AddDate(0, 0, 1), 23, 30, 480, domain.StageLight),
	}

	week := AnalyzeWeek(days)
	if week.OnsetConsistency == nil {
		t.Fatal("expected a consistency score")
	}
	if *week.OnsetConsistency != 0 {
		t.Errorf("consistency = %v, want 0", *week.OnsetConsistency)
	}
}

func TestOnsetConsistencyWrapsMidnight(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	// 23:50 vs 00:10 is 20 minutes around midnight, not 23h40m
	days := []DayTimeline{
		nightFor(t, mon, 23, 50, 420, domain.StageLight),
		nightFor(t, mon.AddDate(0, 0, 1), 24, 10, 420, domain.StageLight),
	}

	week := AnalyzeWeek(days)
	if week.OnsetConsistency == nil {
		t.Fatal("expected a consistency score")
	}
	// 100 - 20/30*100 = 33.33 -> 33.3
	if *week.OnsetConsistency != 33.3 {
		t.Errorf("consistency = %v, want 33.3", *week.OnsetConsistency)
	}
}

func TestOnsetConsistencyNeedsTwoOnsets(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []DayTimeline
	}{
		{name: "no days", days: nil},
		{name: "all empty", days: []DayTimeline{emptyDay(t, mon), emptyDay(t, mon.AddDate(0, 0, 1))}},
		{name: "single onset", days: []DayTimeline{
			nightFor(t, mon, 23, 0, 480, domain.StageDeep),
			emptyDay(t, mon.AddDate(0, 0, 1)),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := AnalyzeWeek(tt.days)
			if week.OnsetConsistency != nil {
				t.Errorf("expected nil consistency, got %v", *week.OnsetConsistency)
			}
		})
	}
}

func TestRegularityIndexIdenticalDays(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	days := make([]DayTimeline, 0, 7)
	for i := 0; i < 7; i++ {
		day := mon.AddDate(0, 0, i)
		// asleep 01:00-06:00 within each day
		days = append(days, DayTimeline{
			DayStart: day,
			Timeline: mustTimeline(t, []domain.SleepInterval{{
				Start:    day.Add(1 * time.Hour),
				Duration: 5 * time.Hour,
				Stage:    domain.StageDeep,
			}}),
		})
	}

	week := AnalyzeWeek(days)
	if week.RegularityIndex == nil {
		t.Fatal("expected a regularity index")
	}
	if *week.RegularityIndex != 100 {
		t.Errorf("SRI = %v, want 100", *week.RegularityIndex)
	}
}

func TestRegularityIndexComplementaryDays(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)

	// day one asleep the first half of the day, day two the second half:
	// every minute slot disagrees
	days := []DayTimeline{
		{
			DayStart: mon,
			Timeline: mustTimeline(t, []domain.SleepInterval{{
				Start: mon, Duration: 12 * time.Hour, Stage: domain.StageLight,
			}}),
		},
		{
			DayStart: tue,
			Timeline: mustTimeline(t, []domain.SleepInterval{{
				Start: tue.Add(12 * time.Hour), Duration: 12 * time.Hour, Stage: domain.StageLight,
			}}),
		},
	}

	week := AnalyzeWeek(days)
	if week.RegularityIndex == nil {
		t.Fatal("expected a regularity index")
	}
	if *week.RegularityIndex != 0 {
		t.Errorf("SRI = %v, want 0", *week.RegularityIndex)
	}
}

func TestRegularityIndexEmptyDaysAgree(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	days := []DayTimeline{emptyDay(t, mon), emptyDay(t, mon.AddDate(0, 0, 1))}

	week := AnalyzeWeek(days)
	if week.RegularityIndex == nil {
		t.Fatal("expected a regularity index")
	}
	// two all-awake bitmaps agree on every minute
	if *week.RegularityIndex != 100 {
		t.Errorf("SRI = %v, want 100", *week.RegularityIndex)
	}
}

func TestRegularityIndexIgnoresInBed(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)

	// in-bed time is not asleep: day one's bitmap stays all false and both
	// days agree everywhere except day two's asleep hour
	days := []DayTimeline{
		{
			DayStart: mon,
			Timeline: mustTimeline(t, []domain.SleepInterval{{
				Start: mon.Add(2 * time.Hour), Duration: time.Hour, Stage: domain.StageInBed,
			}}),
		},
		{
			DayStart: tue,
			Timeline: mustTimeline(t, []domain.SleepInterval{{
				Start: tue.Add(2 * time.Hour), Duration: time.Hour, Stage: domain.StageDeep,
			}}),
		},
	}

	week := AnalyzeWeek(days)
	if week.RegularityIndex == nil {
		t.Fatal("expected a regularity index")
	}
	// 1380 of 1440 minutes agree: 95.83 -> 95.8
	if *week.RegularityIndex != 95.8 {
		t.Errorf("SRI = %v, want 95.8", *week.RegularityIndex)
	}
}

func TestSleepDebt(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []DayTimeline
		want time.Duration
	}{
		{
			name: "seven short nights",
			days: func() []DayTimeline {
				var days []DayTimeline
				for i := 0; i < 7; i++ {
					days = append(days, nightFor(t, mon.AddDate(0, 0, i), 23, 0, 420, domain.StageLight))
				}
				return days
			}(),
			want: 7 * time.Hour, // 7 x (8h - 7h)
		},
		{
			name: "surplus goes negative",
			days: []DayTimeline{
				nightFor(t, mon, 22, 0, 540, domain.StageLight),
				nightFor(t, mon.AddDate(0, 0, 1), 22, 0, 540, domain.StageLight),
			},
			want: -2 * time.Hour, // 2 x (8h - 9h)
		},
		{
			name: "empty day owes the full target",
			days: []DayTimeline{emptyDay(t, mon)},
			want: 8 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := AnalyzeWeek(tt.days)
			if week.SleepDebt != tt.want {
				t.Errorf("SleepDebt = %v, want %v", week.SleepDebt, tt.want)
			}
		})
	}
}

func TestSocialJetLagMidpointGap(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC) // Monday
	sat := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC) // Saturday

	// weekday night midpoint Mon 03:00, weekend night midpoint Sat 04:00;
	// midpoints are absolute timestamps, so the gap carries the five-day
	// date distance: 121h
	days := []DayTimeline{
		nightFor(t, mon, 23, 0, 480, domain.StageLight), // Sun 23:00 - Mon 07:00
		nightFor(t, sat, 23, 0, 600, domain.StageLight), // Fri 23:00 - Sat 09:00
	}

	week := AnalyzeWeek(days)
	if week.SocialJetLag != 121*time.Hour {
		t.Errorf("SocialJetLag = %v, want 121h", week.SocialJetLag)
	}
}

func TestSocialJetLagEmptyBucketQuirk(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	day := nightFor(t, mon, 23, 0, 480, domain.StageLight)

	week := AnalyzeWeek([]DayTimeline{day})

	// with no weekend nights the weekend average defaults to zero, so the
	// "gap" is the weekday midpoint's whole epoch offset
	start, end, ok := day.Timeline.SleepWindow()
	if !ok {
		t.Fatal("expected a sleep window")
	}
	mid := start.Add(end.Sub(start) / 2)
	want := time.Duration(mid.Unix()) * time.Second
	if week.SocialJetLag != want {
		t.Errorf("SocialJetLag = %v, want %v", week.SocialJetLag, want)
	}
}

func TestSocialJetLagNoWindows(t *testing.T) {
	mon := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	week := AnalyzeWeek([]DayTimeline{emptyDay(t, mon), emptyDay(t, mon.AddDate(0, 0, 5))})

	if week.SocialJetLag != 0 {
		t.Errorf("SocialJetLag = %v, want 0", week.SocialJetLag)
	}
}

func TestAnalyzeWeekEmptyInput(t *testing.T) {
	week := AnalyzeWeek(nil)

	if week.OnsetConsistency != nil || week.RegularityIndex != nil {
		t.Error("expected nil scores for empty input")
	}
	if week.SleepDebt != 0 || week.SocialJetLag != 0 {
		t.Errorf("expected zero debt and jet lag, got %v/%v", week.SleepDebt, week.SocialJetLag)
	}
}
