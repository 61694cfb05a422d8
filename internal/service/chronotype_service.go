package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/engine"
	"github.com/nocturnelabs/sleep-metrics/internal/repository"
)

const (
	// MinNightDuration is the minimum sleep window to count a night (90 minutes).
	MinNightDuration = 90 * time.Minute

	// Default values for chronotype calculation
	DefaultChronotypeWindowDays = 30
	DefaultChronotypeMinNights  = 7

	// Chronotype thresholds (minutes after midnight for mid-sleep)
	EarlyBirdThreshold    = 150 // < 150 = early bird (mid-sleep before 2:30 AM)
	IntermediateThreshold = 270 // 150-269 = intermediate, >= 270 = night owl (4:30 AM)
)

// ChronotypeService computes chronotype from stored stage intervals.
type ChronotypeService interface {
	// Compute classifies the user by the median mid-sleep time of the
	// nights in the given window.
	Compute(ctx context.Context, userID uuid.UUID, windowDays, minNights int) (*domain.ChronotypeResult, error)
}

type chronotypeService struct {
	dataRepo repository.SleepDataRepository
	userRepo repository.UserRepository

	// now is swapped in tests to pin the window
	now func() time.Time
}

// NewChronotypeService creates a new ChronotypeService.
func NewChronotypeService(dataRepo repository.SleepDataRepository, userRepo repository.UserRepository) ChronotypeService {
	return &chronotypeService{
		dataRepo: dataRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *chronotypeService) Compute(ctx context.Context, userID uuid.UUID, windowDays, minNights int) (*domain.ChronotypeResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := userLocation(user)

	// Apply defaults
	if windowDays <= 0 {
		windowDays = DefaultChronotypeWindowDays
	}
	if minNights <= 0 {
		minNights = DefaultChronotypeMinNights
	}

	now := s.now().UTC()
	from := now.AddDate(0, 0, -windowDays)

	records, err := s.dataRepo.ListIntervalsByEndRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}

	// Group intervals into nights by the local day each one ends on,
	// matching the attribution rule used for per-night metrics.
	nights := make(map[string][]domain.SleepInterval)
	for i := range records {
		iv := records[i].ToInterval()
		day := iv.End().In(loc).Format(localDateLayout)
		nights[day] = append(nights[day], iv)
	}

	// Calculate the mid-sleep minute for each night with enough sleep
	var midMinutes []int
	for _, intervals := range nights {
		timeline, err := engine.NewTimeline(intervals)
		if err != nil {
			return nil, err
		}
		start, end, ok := timeline.SleepWindow()
		if !ok {
			continue
		}
		window := end.Sub(start)
		if window < MinNightDuration {
			continue
		}

		mid := start.Add(window / 2).In(loc)
		midMinutes = append(midMinutes, mid.Hour()*60+mid.Minute())
	}

	// Build result
	result := &domain.ChronotypeResult{
		WindowDays: windowDays,
		NightsUsed: len(midMinutes),
	}

	// If not enough valid nights, return unknown
	if len(midMinutes) < minNights {
		result.Chronotype = domain.ChronotypeUnknown
		result.MidSleepLocalTime = ""
		result.MidSleepMinutesAfterMidnight = 0
		return result, nil
	}

	// Compute median of mid-sleep minutes
	medianMid := median(midMinutes)
	result.MidSleepMinutesAfterMidnight = medianMid
	result.MidSleepLocalTime = minutesToTimeString(medianMid)

	// Classify chronotype
	result.Chronotype = classifyChronotype(medianMid)

	return result, nil
}

// median calculates the median of a slice of integers.
func median(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// minutesToTimeString converts minutes after midnight to HH:MM format.
func minutesToTimeString(minutes int) string {
	// Handle negative or > 24h values
	minutes = ((minutes % 1440) + 1440) % 1440
	h := minutes / 60
	m := minutes % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// classifyChronotype determines chronotype based on mid-sleep minutes.
func classifyChronotype(midMinutes int) domain.ChronotypeType {
	if midMinutes < EarlyBirdThreshold {
		return domain.ChronotypeEarlyBird
	}
	if midMinutes < IntermediateThreshold {
		return domain.ChronotypeIntermediate
	}
	return domain.ChronotypeNightOwl
}
