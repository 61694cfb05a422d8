package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
)

func pinChronotypeNow(svc ChronotypeService, at time.Time) {
	svc.(*chronotypeService).now = func() time.Time { return at }
}

func TestChronotypeService_Compute(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	t.Run("classifies an intermediate sleeper", func(t *testing.T) {
		repo := NewMockSleepDataRepository()
		userRepo := NewMockUserRepository()
		user := seedUser(userRepo, "UTC")
		svc := NewChronotypeService(repo, userRepo)
		pinChronotypeNow(svc, now)

		// Seven nights sliding from 00:00 to 00:30 onset, 7h each.
		// Mid-sleep minutes 210..240, median 225.
		for i := 0; i < 7; i++ {
			day := time.Date(2024, 3, 20+i, 0, 0, 0, 0, time.UTC)
			start := day.Add(time.Duration(i*5) * time.Minute)
			repo.intervals = append(repo.intervals,
				intervalRecord(user.ID, start, 420, domain.StageLight))
		}

		result, err := svc.Compute(context.Background(), user.ID, 0, 0)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.Chronotype != domain.ChronotypeIntermediate {
			t.Errorf("chronotype = %s, want intermediate", result.Chronotype)
		}
		if result.MidSleepMinutesAfterMidnight != 225 {
			t.Errorf("mid-sleep minutes = %d, want 225", result.MidSleepMinutesAfterMidnight)
		}
		if result.MidSleepLocalTime != "03:45" {
			t.Errorf("mid-sleep time = %q, want 03:45", result.MidSleepLocalTime)
		}
		if result.WindowDays != DefaultChronotypeWindowDays {
			t.Errorf("window days = %d, want %d", result.WindowDays, DefaultChronotypeWindowDays)
		}
		if result.NightsUsed != 7 {
			t.Errorf("nights used = %d, want 7", result.NightsUsed)
		}
	})

	t.Run("classifies an early bird", func(t *testing.T) {
		repo := NewMockSleepDataRepository()
		userRepo := NewMockUserRepository()
		user := seedUser(userRepo, "UTC")
		svc := NewChronotypeService(repo, userRepo)
		pinChronotypeNow(svc, now)

		// 21:00 to 05:00, mid-sleep 01:00
		for i := 0; i < 3; i++ {
			start := time.Date(2024, 3, 24+i, 21, 0, 0, 0, time.UTC)
			repo.intervals = append(repo.intervals,
				intervalRecord(user.ID, start, 480, domain.StageLight))
		}

		result, err := svc.Compute(context.Background(), user.ID, 10, 3)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.Chronotype != domain.ChronotypeEarlyBird {
			t.Errorf("chronotype = %s, want early_bird", result.Chronotype)
		}
		if result.MidSleepMinutesAfterMidnight != 60 {
			t.Errorf("mid-sleep minutes = %d, want 60", result.MidSleepMinutesAfterMidnight)
		}
		if result.WindowDays != 10 || result.NightsUsed != 3 {
			t.Errorf("window/nights = %d/%d, want 10/3", result.WindowDays, result.NightsUsed)
		}
	})

	t.Run("classifies a night owl", func(t *testing.T) {
		repo := NewMockSleepDataRepository()
		userRepo := NewMockUserRepository()
		user := seedUser(userRepo, "UTC")
		svc := NewChronotypeService(repo, userRepo)
		pinChronotypeNow(svc, now)

		// 02:00 to 10:00, mid-sleep 06:00
		for i := 0; i < 3; i++ {
			start := time.Date(2024, 3, 24+i, 2, 0, 0, 0, time.UTC)
			repo.intervals = append(repo.intervals,
				intervalRecord(user.ID, start, 480, domain.StageLight))
		}

		result, err := svc.Compute(context.Background(), user.ID, 10, 3)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.Chronotype != domain.ChronotypeNightOwl {
			t.Errorf("chronotype = %s, want night_owl", result.Chronotype)
		}
		if result.MidSleepMinutesAfterMidnight != 360 {
			t.Errorf("mid-sleep minutes = %d, want 360", result.MidSleepMinutesAfterMidnight)
		}
	})

	t.Run("too few nights yields unknown", func(t *testing.T) {
		repo := NewMockSleepDataRepository()
		userRepo := NewMockUserRepository()
		user := seedUser(userRepo, "UTC")
		svc := NewChronotypeService(repo, userRepo)
		pinChronotypeNow(svc, now)

		for i := 0; i < 2; i++ {
			start := time.Date(2024, 3, 24+i, 23, 0, 0, 0, time.UTC)
			repo.intervals = append(repo.intervals,
				intervalRecord(user.ID, start, 420, domain.StageLight))
		}

		result, err := svc.Compute(context.Background(), user.ID, 0, 0)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.Chronotype != domain.ChronotypeUnknown {
			t.Errorf("chronotype = %s, want unknown", result.Chronotype)
		}
		if result.NightsUsed != 2 {
			t.Errorf("nights used = %d, want 2", result.NightsUsed)
		}
		if result.MidSleepLocalTime != "" || result.MidSleepMinutesAfterMidnight != 0 {
			t.Errorf("unknown result must not carry a mid-sleep time, got %+v", result)
		}
	})

	t.Run("short naps and awake-only nights are ignored", func(t *testing.T) {
		repo := NewMockSleepDataRepository()
		userRepo := NewMockUserRepository()
		user := seedUser(userRepo, "UTC")
		svc := NewChronotypeService(repo, userRepo)
		pinChronotypeNow(svc, now)

		// Three real nights
		for i := 0; i < 3; i++ {
			start := time.Date(2024, 3, 24+i, 0, 0, 0, 0, time.UTC)
			repo.intervals = append(repo.intervals,
				intervalRecord(user.ID, start, 480, domain.StageLight))
		}
		// A one-hour nap and a night of tossing without sleep
		repo.intervals = append(repo.intervals,
			intervalRecord(user.ID, time.Date(2024, 3, 28, 14, 0, 0, 0, time.UTC), 60, domain.StageLight),
			intervalRecord(user.ID, time.Date(2024, 3, 29, 1, 0, 0, 0, time.UTC), 240, domain.StageAwake),
		)

		result, err := svc.Compute(context.Background(), user.ID, 10, 3)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.NightsUsed != 3 {
			t.Errorf("nights used = %d, want 3", result.NightsUsed)
		}
		if result.MidSleepMinutesAfterMidnight != 240 {
			t.Errorf("mid-sleep minutes = %d, want 240", result.MidSleepMinutesAfterMidnight)
		}
	})

	t.Run("mid-sleep follows the user's timezone", func(t *testing.T) {
		repo := NewMockSleepDataRepository()
		userRepo := NewMockUserRepository()
		user := seedUser(userRepo, "America/New_York")
		svc := NewChronotypeService(repo, userRepo)
		pinChronotypeNow(svc, now)

		// 23:00 to 05:00 Eastern stored as UTC; mid-sleep 02:00 local
		start := time.Date(2024, 3, 25, 3, 0, 0, 0, time.UTC)
		repo.intervals = append(repo.intervals,
			intervalRecord(user.ID, start, 360, domain.StageLight))

		result, err := svc.Compute(context.Background(), user.ID, 10, 1)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.MidSleepLocalTime != "02:00" {
			t.Errorf("mid-sleep time = %q, want 02:00", result.MidSleepLocalTime)
		}
		if result.Chronotype != domain.ChronotypeEarlyBird {
			t.Errorf("chronotype = %s, want early_bird", result.Chronotype)
		}
	})

	t.Run("old nights fall outside the window", func(t *testing.T) {
		repo := NewMockSleepDataRepository()
		userRepo := NewMockUserRepository()
		user := seedUser(userRepo, "UTC")
		svc := NewChronotypeService(repo, userRepo)
		pinChronotypeNow(svc, now)

		repo.intervals = append(repo.intervals,
			intervalRecord(user.ID, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 480, domain.StageLight))

		result, err := svc.Compute(context.Background(), user.ID, 30, 1)
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		if result.NightsUsed != 0 || result.Chronotype != domain.ChronotypeUnknown {
			t.Errorf("result = %+v, want zero nights and unknown", result)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewChronotypeService(NewMockSleepDataRepository(), NewMockUserRepository())

		if _, err := svc.Compute(context.Background(), uuid.New(), 0, 0); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}
