package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/repository"
	"github.com/nocturnelabs/sleep-metrics/pkg/pagination"
)

// SleepDataService ingests provider batches and lists stored intervals.
type SleepDataService interface {
	// SyncBatch stores a batch of stage intervals and sensor readings.
	// Replayed records are dropped by the store's dedup index, so the
	// same export can be synced any number of times.
	SyncBatch(ctx context.Context, userID uuid.UUID, req *domain.SyncRequest) (*domain.SyncResult, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.StageIntervalListResponse, error)
}

type sleepDataService struct {
	repo     repository.SleepDataRepository
	userRepo repository.UserRepository
}

func NewSleepDataService(repo repository.SleepDataRepository, userRepo repository.UserRepository) SleepDataService {
	return &sleepDataService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *sleepDataService) SyncBatch(ctx context.Context, userID uuid.UUID, req *domain.SyncRequest) (*domain.SyncResult, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	intervals := make([]domain.StageInterval, 0, len(req.Intervals))
	for _, in := range req.Intervals {
		stage, err := domain.ParseStageLabel(in.Stage)
		if err != nil {
			return nil, err
		}
		if in.EndAt.Before(in.StartAt) {
			return nil, domain.ErrNegativeDuration
		}
		// Normalize timestamps to UTC for storage and dedup
		intervals = append(intervals, domain.StageInterval{
			UserID:  userID,
			StartAt: in.StartAt.UTC(),
			EndAt:   in.EndAt.UTC(),
			Stage:   stage,
		})
	}

	readings := make([]domain.SensorReading, 0, len(req.Samples))
	for _, in := range req.Samples {
		kind, err := domain.ParseSensorKind(in.Kind)
		if err != nil {
			return nil, err
		}
		value := in.Value
		// Some providers export SpO2 as a 0-1 fraction; store percent
		if kind == domain.SensorSpO2 && value <= 1 {
			value *= 100
		}
		readings = append(readings, domain.SensorReading{
			UserID:     userID,
			Kind:       kind,
			RecordedAt: in.RecordedAt.UTC(),
			Value:      value,
		})
	}

	intervalsStored, err := s.repo.InsertIntervals(ctx, intervals)
	if err != nil {
		return nil, err
	}
	samplesStored, err := s.repo.InsertReadings(ctx, readings)
	if err != nil {
		return nil, err
	}

	return &domain.SyncResult{
		IntervalsReceived: len(req.Intervals),
		IntervalsStored:   int(intervalsStored),
		SamplesReceived:   len(req.Samples),
		SamplesStored:     int(samplesStored),
	}, nil
}

func (s *sleepDataService) List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.StageIntervalListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.repo.ListIntervals(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim the extra row fetched to detect the next page
	if hasMore {
		records = records[:limit]
	}

	response := &domain.StageIntervalListResponse{
		Data: make([]domain.StageIntervalResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i := range records {
		response.Data[i] = records[i].ToResponse()
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			StartAt: last.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
