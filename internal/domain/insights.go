package domain

// ChronotypeType represents the user's sleep chronotype classification.
// @Description Chronotype classification based on mid-sleep time.
type ChronotypeType string

const (
	ChronotypeEarlyBird    ChronotypeType = "early_bird"
	ChronotypeIntermediate ChronotypeType = "intermediate"
	ChronotypeNightOwl     ChronotypeType = "night_owl"
	ChronotypeUnknown      ChronotypeType = "unknown"
)

// ChronotypeResult contains the computed chronotype and supporting data.
// @Description Chronotype analysis result.
type ChronotypeResult struct {
	// Chronotype classification
	Chronotype ChronotypeType `json:"chronotype" example:"intermediate"`
	// Mid-sleep time in local timezone (HH:MM format)
	MidSleepLocalTime string `json:"mid_sleep_local_time" example:"03:45"`
	// Minutes after midnight for mid-sleep
	MidSleepMinutesAfterMidnight int `json:"mid_sleep_minutes_after_midnight" example:"225"`
	// Number of days in the analysis window
	WindowDays int `json:"window_days" example:"30"`
	// Number of nights used in calculation
	NightsUsed int `json:"nights_used" example:"28"`
}

// ChronotypeRequest contains query parameters for chronotype endpoint.
type ChronotypeRequest struct {
	WindowDays int `json:"window_days" validate:"omitempty,min=1,max=365"`
	MinNights  int `json:"min_nights" validate:"omitempty,min=1,max=100"`
}

// NightDigest is a compact per-night summary used for trend context.
// @Description One night in the trailing-week trend.
type NightDigest struct {
	// Calendar day the night is attributed to (YYYY-MM-DD)
	Date string `json:"date" example:"2024-03-12"`
	// Total asleep time in hours
	AsleepHours float64 `json:"asleep_hours" example:"7.2"`
	// Sleep efficiency (percent), omitted when not computable
	Efficiency *float64 `json:"efficiency,omitempty" example:"91.4"`
	// Number of sleep-to-awake transitions
	Interruptions int `json:"interruptions" example:"1"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated sleep insights.
type LLMInsightsOutput struct {
	// Summary of sleep patterns (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep has been fairly consistent this week..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations" example:"[\"Deep sleep share of 21% sits in the restorative range\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Try to maintain your current bedtime of around 11 PM\"]"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	Chronotype ChronotypeResult `json:"chronotype"`
	LastNight  MetricsResult    `json:"last_night"`
	Week       []NightDigest    `json:"week"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Complete sleep insights response.
type InsightsResponse struct {
	// Chronotype analysis
	Chronotype ChronotypeResult `json:"chronotype"`
	// Full metrics for the most recent night
	LastNight MetricsResult `json:"last_night"`
	// Per-night digests for the trailing week
	Week []NightDigest `json:"week"`
	// LLM-generated insights
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (optional, only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
