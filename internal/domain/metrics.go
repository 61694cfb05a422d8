package domain

import "time"

// MetricsResult is the full set of derived metrics for one night.
// Optional fields are omitted when the underlying data is insufficient to
// compute them; durations and counters are always present and default to
// zero.
// @Description Derived sleep metrics for a single night.
type MetricsResult struct {
	// Calendar day the night is attributed to (user-local, YYYY-MM-DD)
	Date string `json:"date" example:"2024-03-14"`
	// IANA timezone used for local-time calculations
	Timezone string `json:"timezone" example:"Europe/Prague"`
	// Number of stage intervals behind this result
	IntervalCount int `json:"interval_count" example:"24"`
	// True when the requested day had no data and the previous night was used
	UsedPreviousNight bool `json:"used_previous_night,omitempty"`

	// Light sleep total in seconds
	LightSeconds int64 `json:"light_seconds" example:"14400"`
	// Deep sleep total in seconds
	DeepSeconds int64 `json:"deep_seconds" example:"5400"`
	// REM sleep total in seconds
	REMSeconds int64 `json:"rem_seconds" example:"6300"`
	// Total asleep time (light + deep + REM) in seconds
	AsleepSeconds int64 `json:"asleep_seconds" example:"26100"`
	// Time in bed (bounding window over non-awake stages) in seconds
	TimeInBedSeconds int64 `json:"time_in_bed_seconds" example:"28800"`

	// Light sleep share of total asleep time (percent, rounded)
	LightPercent *int `json:"light_percent,omitempty" example:"55"`
	// Deep sleep share of total asleep time (percent, rounded)
	DeepPercent *int `json:"deep_percent,omitempty" example:"21"`
	// REM sleep share of total asleep time (percent, rounded)
	REMPercent *int `json:"rem_percent,omitempty" example:"24"`

	// Sleep efficiency: asleep time over time in bed (percent)
	Efficiency *float64 `json:"efficiency,omitempty" example:"90.6"`
	// Sleep onset: start of the earliest asleep-stage interval (UTC)
	OnsetAt *time.Time `json:"onset_at,omitempty" example:"2024-03-13T23:12:00Z"`
	// Sleep onset as local wall-clock time (HH:MM)
	OnsetLocalTime string `json:"onset_local_time,omitempty" example:"23:12"`
	// Number of sleep-to-awake transitions
	Interruptions int `json:"interruptions" example:"2"`
	// Number of stage changes between adjacent intervals
	Transitions int `json:"transitions" example:"18"`

	// Onset consistency over the trailing week (0-100)
	OnsetConsistency *float64 `json:"onset_consistency,omitempty" example:"82.4"`
	// Sleep regularity index over the trailing week (0-100)
	RegularityIndex *float64 `json:"regularity_index,omitempty" example:"88.1"`
	// Cumulative sleep debt over the trailing week in hours (negative = surplus)
	SleepDebtHours float64 `json:"sleep_debt_hours" example:"3.25"`
	// Social jet lag over the trailing week in hours
	SocialJetLagHours float64 `json:"social_jet_lag_hours" example:"1.1"`

	// Overnight heart rate dip relative to daytime (percent)
	HeartRateDipPercent *float64 `json:"heart_rate_dip_percent,omitempty" example:"18.3"`
	// Average heart rate during the sleep window (bpm)
	AvgSleepingHeartRate *float64 `json:"avg_sleeping_heart_rate,omitempty" example:"52.4"`
	// Average heart rate variability during the sleep window (ms)
	AvgSleepingHRV *float64 `json:"avg_sleeping_hrv,omitempty" example:"63.1"`
	// Average blood oxygen saturation during the sleep window (percent)
	AvgSleepingSpO2 *float64 `json:"avg_sleeping_spo2,omitempty" example:"96.8"`
	// Average respiratory rate during the sleep window (breaths/min)
	AvgSleepingRespRate *float64 `json:"avg_sleeping_resp_rate,omitempty" example:"14.2"`

	// Composite sleep quality score (0-100)
	QualityScore *int `json:"quality_score,omitempty" example:"78"`
}

// HypnogramEpoch is one five-minute row of the overnight hypnogram.
// @Description Dominant sleep stage for one epoch.
type HypnogramEpoch struct {
	// Epoch start (UTC)
	StartAt time.Time `json:"start_at" example:"2024-03-13T23:00:00Z"`
	// Epoch end (UTC)
	EndAt time.Time `json:"end_at" example:"2024-03-13T23:05:00Z"`
	// Dominant stage within the epoch
	Stage StageLabel `json:"stage" example:"LIGHT"`
	// Vertical row index for rendering (AWAKE=0 .. IN_BED=4)
	ChartRow int `json:"chart_row" example:"2"`
}

// HypnogramResponse is the response body for the hypnogram endpoint.
// Epochs with no stage coverage are omitted entirely.
// @Description Epoch-resolved overnight stage sequence.
type HypnogramResponse struct {
	// Calendar day the night is attributed to (user-local, YYYY-MM-DD)
	Date string `json:"date" example:"2024-03-14"`
	// IANA timezone used for day attribution
	Timezone string `json:"timezone" example:"Europe/Prague"`
	// True when the requested day had no data and the previous night was used
	UsedPreviousNight bool `json:"used_previous_night,omitempty"`
	// Epoch length in seconds
	EpochSeconds int `json:"epoch_seconds" example:"300"`
	// Covered epochs in chronological order
	Epochs []HypnogramEpoch `json:"epochs"`
}
