package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nocturnelabs/sleep-metrics/internal/domain"
	"github.com/nocturnelabs/sleep-metrics/internal/llm"
	"github.com/nocturnelabs/sleep-metrics/internal/repository"
)

// InsightsService generates comprehensive sleep insights.
type InsightsService interface {
	// Generate creates sleep insights for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error)
}

type insightsService struct {
	chronotypeService ChronotypeService
	metricsService    MetricsService
	llmClient         llm.InsightsLLM
	userRepo          repository.UserRepository
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	chronotypeService ChronotypeService,
	metricsService MetricsService,
	llmClient llm.InsightsLLM,
	userRepo repository.UserRepository,
) InsightsService {
	return &insightsService{
		chronotypeService: chronotypeService,
		metricsService:    metricsService,
		llmClient:         llmClient,
		userRepo:          userRepo,
	}
}

func (s *insightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.InsightsResponse, error) {
	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// Compute chronotype over the default window
	chronotype, err := s.chronotypeService.Compute(ctx, userID, DefaultChronotypeWindowDays, DefaultChronotypeMinNights)
	if err != nil {
		return nil, err
	}

	// Most recent night; the empty date applies the today-or-previous-night rule
	lastNight, err := s.metricsService.ComputeNight(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	// Trailing week anchored at the night that was actually resolved
	week, err := s.metricsService.ComputeWeek(ctx, userID, lastNight.Date)
	if err != nil {
		return nil, err
	}

	// Build insights context for LLM
	insightsCtx := &domain.InsightsContext{
		Chronotype: *chronotype,
		LastNight:  *lastNight,
		Week:       week,
	}

	// Generate LLM insights
	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.InsightsResponse{
		Chronotype: *chronotype,
		LastNight:  *lastNight,
		Week:       week,
		Insights:   *llmOutput,
	}, nil
}
