package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/pkg/pagination"
)

// MockSleepDataRepository is an in-memory implementation of SleepDataRepository
type MockSleepDataRepository struct {
	intervals []domain.StageInterval
	readings  []domain.SensorReading

	// listResult overrides ListIntervals when set
	listResult []domain.StageInterval
	err        error
}

func NewMockSleepDataRepository() *MockSleepDataRepository {
	return &MockSleepDataRepository{}
}

func (m *MockSleepDataRepository) SetError(err error) {
	m.err = err
}

func (m *MockSleepDataRepository) InsertIntervals(ctx context.Context, intervals []domain.StageInterval) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var stored int64
	for _, in := range intervals {
		if m.hasInterval(in) {
			continue
		}
		if in.ID == uuid.Nil {
			in.ID = uuid.New()
		}
		in.CreatedAt = time.Now()
		m.intervals = append(m.intervals, in)
		stored++
	}
	return stored, nil
}

func (m *MockSleepDataRepository) hasInterval(in domain.StageInterval) bool {
	for _, existing := range m.intervals {
		if existing.UserID == in.UserID &&
			existing.StartAt.Equal(in.StartAt) &&
			existing.EndAt.Equal(in.EndAt) &&
			existing.Stage == in.Stage {
			return true
		}
	}
	return false
}

func (m *MockSleepDataRepository) InsertReadings(ctx context.Context, readings []domain.SensorReading) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var stored int64
	for _, in := range readings {
		if m.hasReading(in) {
			continue
		}
		if in.ID == uuid.Nil {
			in.ID = uuid.New()
		}
		m.readings = append(m.readings, in)
		stored++
	}
	return stored, nil
}

func (m *MockSleepDataRepository) hasReading(in domain.SensorReading) bool {
	for _, existing := range m.readings {
		if existing.UserID == in.UserID &&
			existing.Kind == in.Kind &&
			existing.RecordedAt.Equal(in.RecordedAt) {
			return true
		}
	}
	return false
}

func (m *MockSleepDataRepository) ListIntervals(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) ([]domain.StageInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.StageInterval, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}

	var result []domain.StageInterval
	for _, iv := range m.intervals {
		if iv.UserID != userID {
			continue
		}
		if filter.From != nil && iv.StartAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && iv.StartAt.After(*filter.To) {
			continue
		}
		if filter.Stage != nil && iv.Stage != *filter.Stage {
			continue
		}
		result = append(result, iv)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.After(result[j].StartAt)
	})

	// Mirror the store's limit+1 fetch
	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockSleepDataRepository) ListIntervalsByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.StageInterval
	for _, iv := range m.intervals {
		// Half-open range on end time, matching the store
		if iv.UserID == userID && !iv.EndAt.Before(from) && iv.EndAt.Before(to) {
			result = append(result, iv)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.Before(result[j].StartAt)
	})
	return result, nil
}

func (m *MockSleepDataRepository) ListReadings(ctx context.Context, userID uuid.UUID, kind domain.SensorKind, from, to time.Time) ([]domain.SensorReading, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SensorReading
	for _, r := range m.readings {
		if r.UserID == userID && r.Kind == kind && !r.RecordedAt.Before(from) && !r.RecordedAt.After(to) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].RecordedAt.Before(result[j].RecordedAt)
	})
	return result, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// Helper functions

func seedUser(repo *MockUserRepository, timezone string) *domain.User {
	user := &domain.User{ID: uuid.New(), Timezone: timezone}
	repo.users[user.ID] = user
	return user
}

func intervalRecord(userID uuid.UUID, start time.Time, durMin int, stage domain.StageLabel) domain.StageInterval {
	return domain.StageInterval{
		ID:      uuid.New(),
		UserID:  userID,
		StartAt: start,
		EndAt:   start.Add(time.Duration(durMin) * time.Minute),
		Stage:   stage,
	}
}

func readingRecord(userID uuid.UUID, kind domain.SensorKind, at time.Time, value float64) domain.SensorReading {
	return domain.SensorReading{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       kind,
		RecordedAt: at,
		Value:      value,
	}
}
