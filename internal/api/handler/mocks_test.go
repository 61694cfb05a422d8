package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
)

// MockSleepDataService is a mock implementation of SleepDataService
type MockSleepDataService struct {
	syncFunc func(ctx context.Context, userID uuid.UUID, req *domain.SyncRequest) (*domain.SyncResult, error)
	listFunc func(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.StageIntervalListResponse, error)
}

func (m *MockSleepDataService) SyncBatch(ctx context.Context, userID uuid.UUID, req *domain.SyncRequest) (*domain.SyncResult, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, userID, req)
	}
	return &domain.SyncResult{
		IntervalsReceived: len(req.Intervals),
		IntervalsStored:   len(req.Intervals),
		SamplesReceived:   len(req.Samples),
		SamplesStored:     len(req.Samples),
	}, nil
}

func (m *MockSleepDataService) List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.StageIntervalListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.StageIntervalListResponse{
		Data:       []domain.StageIntervalResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockMetricsService is a mock implementation of MetricsService
type MockMetricsService struct {
	nightFunc     func(ctx context.Context, userID uuid.UUID, date string) (*domain.MetricsResult, error)
	hypnogramFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.HypnogramResponse, error)
	weekFunc      func(ctx context.Context, userID uuid.UUID, date string) ([]domain.NightDigest, error)
}

func (m *MockMetricsService) ComputeNight(ctx context.Context, userID uuid.UUID, date string) (*domain.MetricsResult, error) {
	if m.nightFunc != nil {
		return m.nightFunc(ctx, userID, date)
	}
	return &domain.MetricsResult{Date: "2024-03-14", Timezone: "UTC"}, nil
}

func (m *MockMetricsService) ComputeHypnogram(ctx context.Context, userID uuid.UUID, date string) (*domain.HypnogramResponse, error) {
	if m.hypnogramFunc != nil {
		return m.hypnogramFunc(ctx, userID, date)
	}
	return &domain.HypnogramResponse{
		Date:         "2024-03-14",
		Timezone:     "UTC",
		EpochSeconds: 300,
		Epochs:       []domain.HypnogramEpoch{},
	}, nil
}

func (m *MockMetricsService) ComputeWeek(ctx context.Context, userID uuid.UUID, date string) ([]domain.NightDigest, error) {
	if m.weekFunc != nil {
		return m.weekFunc(ctx, userID, date)
	}
	return []domain.NightDigest{}, nil
}
