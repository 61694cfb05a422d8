package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/engine"
	"github.com/nocturnelabs/sleep-metrics/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// regularityWindowDays is the trailing window for cross-night metrics.
	regularityWindowDays = 7

	// localDateLayout is the wire format for calendar days.
	localDateLayout = "2006-01-02"
)

// MetricsService derives per-night metrics and hypnograms from stored
// stage intervals and sensor readings.
type MetricsService interface {
	// ComputeNight derives the full metrics set for one local calendar
	// day. An empty date means "today" in the user's timezone; an empty
	// "today" falls back to the previous night exactly once.
	ComputeNight(ctx context.Context, userID uuid.UUID, date string) (*domain.MetricsResult, error)
	// ComputeHypnogram resamples the resolved night into fixed epochs.
	ComputeHypnogram(ctx context.Context, userID uuid.UUID, date string) (*domain.HypnogramResponse, error)
	// ComputeWeek summarizes the trailing seven days ending at the given
	// date for trend context.
	ComputeWeek(ctx context.Context, userID uuid.UUID, date string) ([]domain.NightDigest, error)
}

type metricsService struct {
	dataRepo repository.SleepDataRepository
	userRepo repository.UserRepository

	// now is swapped in tests to pin "today"
	now func() time.Time
}

// NewMetricsService creates a new MetricsService.
func NewMetricsService(dataRepo repository.SleepDataRepository, userRepo repository.UserRepository) MetricsService {
	return &metricsService{
		dataRepo: dataRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// resolvedNight carries the outcome of the day-boundary policy.
type resolvedNight struct {
	day      time.Time // local midnight of the attributed day
	timeline *engine.Timeline
	count    int
	fellBack bool
}

func (s *metricsService) ComputeNight(ctx context.Context, userID uuid.UUID, date string) (*domain.MetricsResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := userLocation(user)

	tracer := otel.Tracer("sleep-metrics-api/metrics")
	ctx, span := tracer.Start(ctx, "MetricsService.ComputeNight",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("metrics.requested_date", date),
		),
	)
	defer span.End()

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id":  userID.String(),
		"date":     date,
		"timezone": user.Timezone,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	night, err := s.resolveNight(ctx, userID, date, loc)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("metrics.resolved_date", night.day.Format(localDateLayout)),
		attribute.Bool("metrics.used_previous_night", night.fellBack),
		attribute.Int("metrics.interval_count", night.count),
	)

	result := &domain.MetricsResult{
		Date:              night.day.Format(localDateLayout),
		Timezone:          user.Timezone,
		IntervalCount:     night.count,
		UsedPreviousNight: night.fellBack,
	}

	// No data even after the fallback: every derived field keeps its
	// zero/absent value, which is a valid partial result.
	if night.count == 0 {
		return result, nil
	}

	agg := engine.Aggregate(night.timeline)
	result.LightSeconds = int64(agg.Light.Seconds())
	result.DeepSeconds = int64(agg.Deep.Seconds())
	result.REMSeconds = int64(agg.REM.Seconds())
	result.AsleepSeconds = int64(agg.Asleep.Seconds())
	result.TimeInBedSeconds = int64(agg.TimeInBed.Seconds())
	result.LightPercent = agg.LightPct
	result.DeepPercent = agg.DeepPct
	result.REMPercent = agg.REMPct
	result.Efficiency = agg.Efficiency
	result.OnsetAt = agg.OnsetAt
	if agg.OnsetAt != nil {
		result.OnsetLocalTime = agg.OnsetAt.In(loc).Format("15:04")
	}
	result.Interruptions = agg.Interruptions
	result.Transitions = agg.Transitions

	week, err := s.fetchWeek(ctx, userID, night.day)
	if err != nil {
		return nil, err
	}
	weekMetrics := engine.AnalyzeWeek(week)
	result.OnsetConsistency = weekMetrics.OnsetConsistency
	result.RegularityIndex = weekMetrics.RegularityIndex
	result.SleepDebtHours = roundHours(weekMetrics.SleepDebt)
	result.SocialJetLagHours = roundHours(weekMetrics.SocialJetLag)

	if err := s.attachSensorMetrics(ctx, result, userID, night, loc); err != nil {
		return nil, err
	}

	result.QualityScore = engine.QualityScore(engine.ScoreInput{
		TotalSleep:    agg.Asleep,
		Efficiency:    agg.Efficiency,
		DeepPct:       agg.DeepPct,
		REMPct:        agg.REMPct,
		Consistency:   weekMetrics.OnsetConsistency,
		HeartRateDip:  result.HeartRateDipPercent,
		AvgHRV:        result.AvgSleepingHRV,
		Interruptions: agg.Interruptions,
		HasData:       night.count > 0,
	})

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return result, nil
}

func (s *metricsService) ComputeHypnogram(ctx context.Context, userID uuid.UUID, date string) (*domain.HypnogramResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := userLocation(user)

	tracer := otel.Tracer("sleep-metrics-api/metrics")
	ctx, span := tracer.Start(ctx, "MetricsService.ComputeHypnogram",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("metrics.requested_date", date),
		),
	)
	defer span.End()

	night, err := s.resolveNight(ctx, userID, date, loc)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("metrics.resolved_date", night.day.Format(localDateLayout)),
		attribute.Bool("metrics.used_previous_night", night.fellBack),
	)

	resp := &domain.HypnogramResponse{
		Date:              night.day.Format(localDateLayout),
		Timezone:          user.Timezone,
		UsedPreviousNight: night.fellBack,
		EpochSeconds:      int(engine.EpochLength.Seconds()),
		Epochs:            []domain.HypnogramEpoch{},
	}
	for _, e := range engine.Hypnogram(night.timeline) {
		resp.Epochs = append(resp.Epochs, domain.HypnogramEpoch{
			StartAt:  e.Start,
			EndAt:    e.End,
			Stage:    e.Stage,
			ChartRow: e.Stage.ChartRow(),
		})
	}
	return resp, nil
}

func (s *metricsService) ComputeWeek(ctx context.Context, userID uuid.UUID, date string) ([]domain.NightDigest, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := userLocation(user)

	day := s.today(loc)
	if date != "" {
		parsed, err := time.ParseInLocation(localDateLayout, date, loc)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		day = parsed
	}

	week, err := s.fetchWeek(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	digests := make([]domain.NightDigest, 0, len(week))
	for _, d := range week {
		agg := engine.Aggregate(d.Timeline)
		digests = append(digests, domain.NightDigest{
			Date:          d.DayStart.Format(localDateLayout),
			AsleepHours:   roundHours(agg.Asleep),
			Efficiency:    agg.Efficiency,
			Interruptions: agg.Interruptions,
		})
	}
	return digests, nil
}

// resolveNight applies the day-boundary policy: an explicitly requested or
// defaulted "today" with no intervals resolves to yesterday instead, a
// single time; any other empty day stays empty.
func (s *metricsService) resolveNight(ctx context.Context, userID uuid.UUID, date string, loc *time.Location) (resolvedNight, error) {
	today := s.today(loc)
	day := today
	if date != "" {
		parsed, err := time.ParseInLocation(localDateLayout, date, loc)
		if err != nil {
			return resolvedNight{}, domain.ErrInvalidInput
		}
		day = parsed
	}

	timeline, count, err := s.fetchTimeline(ctx, userID, day)
	if err != nil {
		return resolvedNight{}, err
	}

	if count == 0 && day.Equal(today) {
		prev := day.AddDate(0, 0, -1)
		prevTimeline, prevCount, err := s.fetchTimeline(ctx, userID, prev)
		if err != nil {
			return resolvedNight{}, err
		}
		return resolvedNight{day: prev, timeline: prevTimeline, count: prevCount, fellBack: true}, nil
	}

	return resolvedNight{day: day, timeline: timeline, count: count}, nil
}

// fetchTimeline loads one local day's intervals; a night belongs to the
// day it ends on.
func (s *metricsService) fetchTimeline(ctx context.Context, userID uuid.UUID, day time.Time) (*engine.Timeline, int, error) {
	records, err := s.dataRepo.ListIntervalsByEndRange(ctx, userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, 0, err
	}

	intervals := make([]domain.SleepInterval, 0, len(records))
	for i := range records {
		intervals = append(intervals, records[i].ToInterval())
	}
	timeline, err := engine.NewTimeline(intervals)
	if err != nil {
		return nil, 0, err
	}
	return timeline, len(intervals), nil
}

// fetchWeek loads the trailing seven days ending at day, oldest first.
func (s *metricsService) fetchWeek(ctx context.Context, userID uuid.UUID, day time.Time) ([]engine.DayTimeline, error) {
	days := make([]engine.DayTimeline, 0, regularityWindowDays)
	for i := regularityWindowDays - 1; i >= 0; i-- {
		dayStart := day.AddDate(0, 0, -i)
		timeline, _, err := s.fetchTimeline(ctx, userID, dayStart)
		if err != nil {
			return nil, err
		}
		days = append(days, engine.DayTimeline{DayStart: dayStart, Timeline: timeline})
	}
	return days, nil
}

// attachSensorMetrics fills the sensor-backed fields: the heart-rate dip
// over the attributed day and the in-window averages for each stream.
func (s *metricsService) attachSensorMetrics(ctx context.Context, result *domain.MetricsResult, userID uuid.UUID, night resolvedNight, loc *time.Location) error {
	dayRecords, err := s.dataRepo.ListReadings(ctx, userID, domain.SensorHeartRate, night.day, night.day.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	result.HeartRateDipPercent = engine.HeartRateDip(toSamples(dayRecords), loc)

	winStart, winEnd, ok := night.timeline.SleepWindow()
	if !ok {
		// no non-awake intervals: the averages stay absent
		return nil
	}

	targets := []struct {
		kind domain.SensorKind
		dest **float64
	}{
		{domain.SensorHeartRate, &result.AvgSleepingHeartRate},
		{domain.SensorHRV, &result.AvgSleepingHRV},
		{domain.SensorSpO2, &result.AvgSleepingSpO2},
		{domain.SensorRespiratoryRate, &result.AvgSleepingRespRate},
	}
	for _, t := range targets {
		records, err := s.dataRepo.ListReadings(ctx, userID, t.kind, winStart, winEnd)
		if err != nil {
			return err
		}
		*t.dest = engine.AverageInWindow(toSamples(records), winStart, winEnd)
	}
	return nil
}

// today truncates the current time to the local day start.
func (s *metricsService) today(loc *time.Location) time.Time {
	n := s.now().In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// userLocation resolves the user's timezone, falling back to UTC for
// empty or invalid zones.
func userLocation(u *domain.User) *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

func toSamples(records []domain.SensorReading) []domain.SensorSample {
	samples := make([]domain.SensorSample, 0, len(records))
	for i := range records {
		samples = append(samples, records[i].ToSample())
	}
	return samples
}
