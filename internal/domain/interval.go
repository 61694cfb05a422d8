package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepInterval is one contiguous run of a single sleep stage. It is the
// value the derivation engine works on; storage and transport concerns live
// on StageInterval.
type SleepInterval struct {
	Start    time.Time
	Duration time.Duration
	Stage    StageLabel
}

// NewSleepInterval builds a validated interval. Zero-duration intervals are
// legal (providers emit them around stage boundaries); negative durations
// are not.
func NewSleepInterval(start time.Time, duration time.Duration, stage StageLabel) (SleepInterval, error) {
	if duration < 0 {
		return SleepInterval{}, ErrNegativeDuration
	}
	if !stage.Valid() {
		return SleepInterval{}, ErrInvalidStage
	}
	return SleepInterval{Start: start, Duration: duration, Stage: stage}, nil
}

// End returns the instant the interval finishes.
func (i SleepInterval) End() time.Time {
	return i.Start.Add(i.Duration)
}

// StageInterval is the stored form of a provider stage sample.
type StageInterval struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_stage_intervals_user_start;uniqueIndex:idx_stage_intervals_dedup" json:"user_id"`
	StartAt time.Time  `gorm:"not null;index:idx_stage_intervals_user_start,sort:desc;uniqueIndex:idx_stage_intervals_dedup" json:"start_at"`
	EndAt   time.Time  `gorm:"not null;index:idx_stage_intervals_user_end;uniqueIndex:idx_stage_intervals_dedup" json:"end_at"`
	Stage   StageLabel `gorm:"type:varchar(10);not null;uniqueIndex:idx_stage_intervals_dedup" json:"stage"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StageInterval) TableName() string {
	return "stage_intervals"
}

// ToInterval converts the stored row to the engine value.
func (r *StageInterval) ToInterval() SleepInterval {
	return SleepInterval{
		Start:    r.StartAt,
		Duration: r.EndAt.Sub(r.StartAt),
		Stage:    r.Stage,
	}
}

// StageIntervalInput is one interval in a batch ingestion request.
// @Description A single provider stage interval.
type StageIntervalInput struct {
	// Interval start in RFC3339 format (UTC recommended)
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-03-13T23:04:00Z"`
	// Interval end in RFC3339 format (must not precede start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtefield=StartAt" example:"2024-03-13T23:34:00Z"`
	// Provider stage label (canonical names, HealthKit codes and common aliases accepted)
	Stage string `json:"stage" validate:"required,sleepstage" example:"LIGHT"`
}

// StageIntervalResponse is the response body for interval listing.
// @Description Stored stage interval.
type StageIntervalResponse struct {
	// Unique interval identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Interval start (UTC)
	StartAt time.Time `json:"start_at" example:"2024-03-13T23:04:00Z"`
	// Interval end (UTC)
	EndAt time.Time `json:"end_at" example:"2024-03-13T23:34:00Z"`
	// Interval length in seconds
	DurationSeconds int64 `json:"duration_seconds" example:"1800"`
	// Canonical stage label
	Stage StageLabel `json:"stage" example:"LIGHT"`
}

func (r *StageInterval) ToResponse() StageIntervalResponse {
	return StageIntervalResponse{
		ID:              r.ID,
		StartAt:         r.StartAt,
		EndAt:           r.EndAt,
		DurationSeconds: int64(r.EndAt.Sub(r.StartAt).Seconds()),
		Stage:           r.Stage,
	}
}

// StageIntervalListResponse is the response body for listing intervals.
// @Description Paginated list of stage intervals.
type StageIntervalListResponse struct {
	// Array of stage intervals
	Data []StageIntervalResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// IntervalFilter contains filter parameters for listing stage intervals
type IntervalFilter struct {
	From   *time.Time
	To     *time.Time
	Stage  *StageLabel
	Limit  int
	Cursor string
}
