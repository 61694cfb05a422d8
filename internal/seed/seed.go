package seed

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/repository"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users, staged nights and sensor
// streams. Generation is deterministic per user and day, so repeated runs
// produce the same rows and the store's dedup index drops them all.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.StageInterval{}, &domain.SensorReading{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	repo := repository.NewSleepDataRepository(db)
	ctx := context.Background()

	for _, user := range users {
		if err := seedNightsForUser(ctx, repo, user); err != nil {
			return err
		}
	}

	return nil
}

func seedNightsForUser(ctx context.Context, repo repository.SleepDataRepository, user domain.User) error {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}

	now := time.Now().In(loc)
	var intervals []domain.StageInterval
	var readings []domain.SensorReading

	for i := 1; i <= seededDays; i++ {
		day := now.AddDate(0, 0, -i)
		rng := rand.New(rand.NewSource(nightSeed(user.ID, day)))

		// Bedtime the previous local evening, wandering around 22:30
		bedtime := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).
			Add(-time.Duration(60+rng.Intn(120)) * time.Minute)

		night := buildNight(rng, user.ID, bedtime)
		intervals = append(intervals, night...)

		wake := night[len(night)-1].EndAt
		readings = append(readings, buildSensorStreams(rng, user.ID, bedtime, wake)...)
	}

	if _, err := repo.InsertIntervals(ctx, intervals); err != nil {
		return fmt.Errorf("failed to seed intervals for %s: %w", user.ID, err)
	}
	if _, err := repo.InsertReadings(ctx, readings); err != nil {
		return fmt.Errorf("failed to seed readings for %s: %w", user.ID, err)
	}
	return nil
}

// nightSeed derives a stable rng seed from the user and local day.
func nightSeed(userID uuid.UUID, day time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(userID.String()))
	h.Write([]byte(day.Format("2006-01-02")))
	return int64(h.Sum64())
}

// buildNight assembles a staged night: a short in-bed lead-in, then sleep
// cycles of light, deep and REM with occasional awakenings.
func buildNight(rng *rand.Rand, userID uuid.UUID, bedtime time.Time) []domain.StageInterval {
	var intervals []domain.StageInterval
	cursor := bedtime

	appendStage := func(stage domain.StageLabel, minutes int) {
		end := cursor.Add(time.Duration(minutes) * time.Minute)
		intervals = append(intervals, domain.StageInterval{
			UserID:  userID,
			StartAt: cursor.UTC(),
			EndAt:   end.UTC(),
			Stage:   stage,
		})
		cursor = end
	}

	appendStage(domain.StageInBed, 5+rng.Intn(15))

	target := time.Duration(390+rng.Intn(120)) * time.Minute
	slept := time.Duration(0)
	cycle := 0
	for slept < target {
		// Deep sleep concentrates in the early cycles
		deepMin := 25 - cycle*5
		if deepMin < 5 {
			deepMin = 5
		}
		remMin := 10 + cycle*5
		if remMin > 30 {
			remMin = 30
		}

		appendStage(domain.StageLight, 25+rng.Intn(20))
		appendStage(domain.StageDeep, deepMin+rng.Intn(10))
		appendStage(domain.StageLight, 10+rng.Intn(15))
		appendStage(domain.StageREM, remMin+rng.Intn(10))

		if rng.Float32() < 0.4 {
			appendStage(domain.StageAwake, 2+rng.Intn(7))
		}

		slept = cursor.Sub(bedtime)
		cycle++
	}

	return intervals
}

// buildSensorStreams emits heart rate through the day plus sleeping HRV,
// SpO2 and respiratory rate, so every derived sensor metric has data.
func buildSensorStreams(rng *rand.Rand, userID uuid.UUID, bedtime, wake time.Time) []domain.SensorReading {
	var readings []domain.SensorReading

	add := func(kind domain.SensorKind, at time.Time, value float64) {
		readings = append(readings, domain.SensorReading{
			UserID:     userID,
			Kind:       kind,
			RecordedAt: at.UTC(),
			Value:      value,
		})
	}

	nightBase := 50.0 + rng.Float64()*8
	for at := bedtime; at.Before(wake); at = at.Add(10 * time.Minute) {
		add(domain.SensorHeartRate, at, nightBase+rng.Float64()*6)
	}
	for at := bedtime; at.Before(wake); at = at.Add(30 * time.Minute) {
		add(domain.SensorHRV, at, 35+rng.Float64()*30)
	}
	for at := bedtime; at.Before(wake); at = at.Add(time.Hour) {
		add(domain.SensorSpO2, at, 95+rng.Float64()*3)
		add(domain.SensorRespiratoryRate, at, 13+rng.Float64()*3)
	}

	// Daytime heart rate so the overnight dip is measurable
	dayBase := nightBase + 18 + rng.Float64()*8
	for h := 1; h <= 12; h += 2 {
		add(domain.SensorHeartRate, wake.Add(time.Duration(h)*time.Hour), dayBase+rng.Float64()*10)
	}

	return readings
}
