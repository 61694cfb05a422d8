package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SleepDataRepository stores and fetches provider stage intervals and
// sensor readings. List methods return empty slices, never a not-found
// error, when a range holds no data.
type SleepDataRepository interface {
	// InsertIntervals bulk-inserts intervals, silently skipping rows that
	// collide with the dedup index. Returns the number of new rows.
	InsertIntervals(ctx context.Context, intervals []domain.StageInterval) (int64, error)
	// InsertReadings bulk-inserts sensor readings with the same dedup
	// semantics as InsertIntervals.
	InsertReadings(ctx context.Context, readings []domain.SensorReading) (int64, error)
	// ListIntervals pages through a user's intervals, newest start first.
	ListIntervals(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) ([]domain.StageInterval, error)
	// ListIntervalsByEndRange returns intervals ending in [from, to),
	// sorted ascending by start. Night attribution keys off the end time.
	ListIntervalsByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageInterval, error)
	// ListReadings returns one sensor stream's readings recorded in
	// [from, to], sorted ascending.
	ListReadings(ctx context.Context, userID uuid.UUID, kind domain.SensorKind, from, to time.Time) ([]domain.SensorReading, error)
}

type sleepDataRepository struct {
	db *gorm.DB
}

func NewSleepDataRepository(db *gorm.DB) SleepDataRepository {
	return &sleepDataRepository{db: db}
}

func (r *sleepDataRepository) InsertIntervals(ctx context.Context, intervals []domain.StageInterval) (int64, error) {
	if len(intervals) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&intervals)
	return tx.RowsAffected, tx.Error
}

func (r *sleepDataRepository) InsertReadings(ctx context.Context, readings []domain.SensorReading) (int64, error) {
	if len(readings) == 0 {
		return 0, nil
	}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&readings)
	return tx.RowsAffected, tx.Error
}

func (r *sleepDataRepository) ListIntervals(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) ([]domain.StageInterval, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at DESC")

	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}
	if filter.Stage != nil {
		query = query.Where("stage = ?", *filter.Stage)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with start_at < cursor.StartAt
			// or same start_at but id < cursor.ID
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var intervals []domain.StageInterval
	if err := query.Find(&intervals).Error; err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *sleepDataRepository) ListIntervalsByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageInterval, error) {
	var intervals []domain.StageInterval
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("end_at >= ? AND end_at < ?", from, to).
		Order("start_at ASC").
		Find(&intervals).Error
	if err != nil {
		return nil, err
	}
	return intervals, nil
}

func (r *sleepDataRepository) ListReadings(ctx context.Context, userID uuid.UUID, kind domain.SensorKind, from, to time.Time) ([]domain.SensorReading, error) {
	var readings []domain.SensorReading
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		Where("recorded_at >= ? AND recorded_at <= ?", from, to).
		Order("recorded_at ASC").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}
	return readings, nil
}
