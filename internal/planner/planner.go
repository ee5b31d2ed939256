package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MikeSquared-Agency/Platter/internal/config"
	"github.com/MikeSquared-Agency/Platter/internal/hermes"
	"github.com/MikeSquared-Agency/Platter/internal/meals"
	"github.com/MikeSquared-Agency/Platter/internal/metrics"
	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

var (
	ErrGeneratorDisabled = errors.New("meal generator is not configured")
	ErrTooManyCandidates = errors.New("too many candidates")
	ErrInvalidAnchor     = errors.New("invalid anchor")
	ErrInvalidID         = errors.New("invalid ranking id")
)

// rankingID matches IDs that fit in a single NATS subject token.
var rankingID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Request sources, used as metric labels.
const (
	SourceAPI    = "api"
	SourceBatch  = "batch"
	SourcePlan   = "plan"
	SourceHermes = "hermes"
	SourceCLI    = "cli"
)

// Planner wires the ranking engine to its collaborators: the meal generator that
// produces goals and candidates, and hermes for outcome events. It keeps no state
// between requests.
type Planner struct {
	scorer    *ranking.Scorer
	generator *meals.Generator
	hermes    hermes.Client
	cfg       *config.Config
	logger    *slog.Logger
}

// New creates a Planner. generator and h may be nil: plans are then rejected with
// ErrGeneratorDisabled and no events are published.
func New(scorer *ranking.Scorer, generator *meals.Generator, h hermes.Client, cfg *config.Config, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		scorer:    scorer,
		generator: generator,
		hermes:    h,
		cfg:       cfg,
		logger:    logger,
	}
}

// GeneratorEnabled reports whether plans and goals can be produced.
func (p *Planner) GeneratorEnabled() bool { return p.generator != nil }

// RankRequest is one goal vector and the candidates to rank against it.
type RankRequest struct {
	ID         string              `json:"id,omitempty"`
	Goal       ranking.GoalVector  `json:"goal"`
	Candidates []ranking.Candidate `json:"candidates"`
	Anchor     string              `json:"anchor,omitempty"`
	Dimensions []string            `json:"dimensions,omitempty"`
	Source     string              `json:"-"`
}

// RankingResult is a ranking plus the ID its events were published under.
type RankingResult struct {
	RankingID string `json:"ranking_id"`
	*ranking.Ranking
}

// Rank validates and scores one request, records metrics and publishes the outcome.
// Candidates without an ID are assigned one.
func (p *Planner) Rank(ctx context.Context, req RankRequest) (*RankingResult, error) {
	if req.Source == "" {
		req.Source = SourceAPI
	}
	source := req.Source

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	} else if !rankingID.MatchString(id) {
		// No event: the ID cannot name a subject.
		metrics.ObserveRankingFailure(source)
		p.logger.Info("ranking rejected", "source", source, "error", ErrInvalidID)
		return nil, fmt.Errorf("%w: %q must be 1-128 letters, digits, '-' or '_'", ErrInvalidID, id)
	}

	result, err := p.rank(id, req)
	if err != nil {
		metrics.ObserveRankingFailure(source)
		p.logger.Info("ranking rejected", "ranking_id", id, "source", source, "error", err)
		p.publish("ranking_failed", hermes.SubjectRankingFailed(id), hermes.RankingFailedEvent{
			RankingID: id,
			Error:     err.Error(),
			Code:      ErrorCode(err),
			Timestamp: time.Now().UTC(),
		})
		return nil, err
	}

	top, _ := result.Top()
	p.logger.Info("ranking completed",
		"ranking_id", id,
		"source", source,
		"anchor", result.Anchor,
		"candidates", len(result.Candidates),
		"top_id", top.ID,
		"top_score", top.Score,
	)
	p.publish("ranking_completed", hermes.SubjectRankingCompleted(id), hermes.RankingCompletedEvent{
		RankingID:      id,
		Anchor:         string(result.Anchor),
		CandidateCount: len(result.Candidates),
		TopID:          top.ID,
		TopScore:       top.Score,
		Ranking:        result.Ranking,
		Timestamp:      time.Now().UTC(),
	})
	return result, nil
}

func (p *Planner) rank(id string, req RankRequest) (*RankingResult, error) {
	if limit := p.cfg.Ranking.MaxCandidates; len(req.Candidates) > limit {
		return nil, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyCandidates, len(req.Candidates), limit)
	}

	scorer := p.scorer
	if req.Anchor != "" {
		anchor, err := ranking.ParseAnchor(req.Anchor)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAnchor, err)
		}
		scorer = scorer.WithAnchor(anchor)
	}
	if len(req.Dimensions) > 0 {
		scorer = scorer.WithDimensionNames(req.Dimensions...)
	}

	candidates := make([]ranking.Candidate, len(req.Candidates))
	copy(candidates, req.Candidates)
	for i := range candidates {
		if candidates[i].ID == "" {
			candidates[i].ID = uuid.NewString()
		}
	}

	start := time.Now()
	r, err := scorer.Rank(req.Goal, candidates)
	if err != nil {
		return nil, err
	}
	top, _ := r.Top()
	metrics.ObserveRanking(req.Source, len(r.Candidates), top.Score, time.Since(start))
	return &RankingResult{RankingID: id, Ranking: r}, nil
}

// BatchItem is the outcome of one request in a batch: either Result or Error is set.
type BatchItem struct {
	Result *RankingResult `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
	Code   string         `json:"code,omitempty"`
}

// RankBatch ranks independent requests concurrently, bounded by planner.batch_concurrency.
// Results keep request order; a failing request never affects its siblings.
func (p *Planner) RankBatch(ctx context.Context, reqs []RankRequest) []BatchItem {
	items := make([]BatchItem, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Planner.BatchConcurrency)
	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i] = BatchItem{Error: err.Error()}
				return nil
			}
			if req.Source == "" {
				req.Source = SourceBatch
			}
			res, err := p.Rank(gctx, req)
			if err != nil {
				items[i] = BatchItem{Error: err.Error(), Code: ErrorCode(err)}
				return nil
			}
			items[i] = BatchItem{Result: res}
			return nil
		})
	}
	_ = g.Wait()
	return items
}

// PlanRequest asks for ranked dishes. Goals, when set, skip goal generation.
type PlanRequest struct {
	Profile     string       `json:"profile,omitempty"`
	Objective   string       `json:"objective,omitempty"`
	Goals       *meals.Goals `json:"goals,omitempty"`
	Ingredients []string     `json:"ingredients"`
	Anchor      string       `json:"anchor,omitempty"`
}

// Plan is a ranked set of generated dishes for one meal.
type Plan struct {
	ID          string             `json:"plan_id"`
	RankingID   string             `json:"ranking_id"`
	DailyGoals  meals.Goals        `json:"daily_goals"`
	MealGoals   meals.Goals        `json:"meal_goals"`
	MealsPerDay int                `json:"meals_per_day"`
	Anchor      ranking.Anchor     `json:"anchor"`
	Dishes      []meals.RankedDish `json:"dishes"`
	Frontier    []string           `json:"frontier,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Goals derives daily goals from a profile.
func (p *Planner) Goals(ctx context.Context, profile, objective string) (meals.Goals, error) {
	if p.generator == nil {
		return meals.Goals{}, ErrGeneratorDisabled
	}
	return p.generator.Goals(ctx, profile, objective)
}

// Plan produces goals (unless supplied), generates dishes and ranks them against
// the per-meal share of the daily goals.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*Plan, error) {
	if p.generator == nil {
		return nil, ErrGeneratorDisabled
	}
	planID := uuid.NewString()

	plan, err := p.plan(ctx, planID, req)
	if err != nil {
		p.logger.Warn("plan failed", "plan_id", planID, "error", err)
		p.publish("plan_failed", hermes.SubjectPlanFailed(planID), hermes.PlanFailedEvent{
			PlanID:    planID,
			Error:     err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return nil, err
	}

	evt := hermes.PlanCompletedEvent{
		PlanID:    plan.ID,
		DishCount: len(plan.Dishes),
		Timestamp: plan.CreatedAt,
	}
	if len(plan.Dishes) > 0 {
		evt.TopDish = plan.Dishes[0].Name
		evt.TopScore = plan.Dishes[0].Score
	}
	p.publish("plan_completed", hermes.SubjectPlanCompleted(plan.ID), evt)
	return plan, nil
}

func (p *Planner) plan(ctx context.Context, planID string, req PlanRequest) (*Plan, error) {
	if _, err := ranking.ParseAnchor(req.Anchor); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAnchor, err)
	}

	var daily meals.Goals
	if req.Goals != nil {
		daily = *req.Goals
	} else {
		g, err := p.generator.Goals(ctx, req.Profile, req.Objective)
		if err != nil {
			return nil, err
		}
		daily = g
	}
	perMeal := daily.PerMeal(p.cfg.Planner.MealsPerDay)

	dishes, err := p.generator.Dishes(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	res, err := p.Rank(ctx, RankRequest{
		Goal:       perMeal.Vector(),
		Candidates: meals.Candidates(dishes),
		Anchor:     req.Anchor,
		Dimensions: meals.Dimensions(),
		Source:     SourcePlan,
	})
	if err != nil {
		return nil, err
	}

	return &Plan{
		ID:          planID,
		RankingID:   res.RankingID,
		DailyGoals:  daily,
		MealGoals:   perMeal,
		MealsPerDay: p.cfg.Planner.MealsPerDay,
		Anchor:      res.Anchor,
		Dishes:      meals.RankDishes(dishes, res.Ranking),
		Frontier:    res.Frontier,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ChatReply is the assistant's answer to one chat message.
type ChatReply struct {
	Reply       string    `json:"reply"`
	Personality string    `json:"personality"`
	CreatedAt   time.Time `json:"created_at"`
}

// Chat answers a stateless nutrition question. No history is kept between calls.
func (p *Planner) Chat(ctx context.Context, req meals.ChatRequest) (*ChatReply, error) {
	if p.generator == nil {
		return nil, ErrGeneratorDisabled
	}
	reply, personality, err := p.generator.Chat(ctx, req)
	if err != nil {
		return nil, err
	}
	p.logger.Info("chat answered", "personality", personality, "has_goals", req.Goals != nil, "dishes", len(req.Dishes))
	return &ChatReply{Reply: reply, Personality: personality, CreatedAt: time.Now().UTC()}, nil
}

// SetupSubscriptions serves rank requests arriving over hermes. Results go out on
// the ranking completed/failed subjects keyed by the request ID.
func (p *Planner) SetupSubscriptions() error {
	if p.hermes == nil {
		return nil
	}
	return p.hermes.Subscribe(hermes.SubjectRankRequest, p.handleRankRequest)
}

func (p *Planner) handleRankRequest(subject string, data []byte) {
	var evt hermes.RankRequestEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		p.logger.Warn("invalid rank request", "subject", subject, "error", err)
		metrics.ObserveRankingFailure(SourceHermes)
		return
	}
	// Rank publishes the outcome; the error is already reported there.
	_, _ = p.Rank(context.Background(), RankRequest{
		ID:         evt.RequestID,
		Goal:       evt.Goal,
		Candidates: evt.Candidates,
		Anchor:     evt.Anchor,
		Dimensions: evt.Dimensions,
		Source:     SourceHermes,
	})
}

func (p *Planner) publish(kind, subject string, evt interface{}) {
	if p.hermes == nil {
		return
	}
	err := p.hermes.Publish(subject, evt)
	metrics.ObservePublish(kind, err)
	if err != nil {
		p.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

// ErrorCode extends ranking.ErrorCode with the planner's own request errors.
func ErrorCode(err error) string {
	if code := ranking.ErrorCode(err); code != "" {
		return code
	}
	switch {
	case errors.Is(err, ErrTooManyCandidates):
		return "too_many_candidates"
	case errors.Is(err, ErrInvalidAnchor):
		return "invalid_anchor"
	case errors.Is(err, ErrInvalidID):
		return "invalid_id"
	case errors.Is(err, ErrGeneratorDisabled):
		return "generator_disabled"
	case errors.Is(err, meals.ErrProfileTooShort):
		return "profile_too_short"
	case errors.Is(err, meals.ErrNoIngredients):
		return "no_ingredients"
	case errors.Is(err, meals.ErrEmptyMessage):
		return "empty_message"
	case errors.Is(err, meals.ErrMessageTooLong):
		return "message_too_long"
	case errors.Is(err, meals.ErrUnknownPersonality):
		return "unknown_personality"
	case errors.Is(err, meals.ErrNoDishes):
		return "no_dishes"
	case errors.Is(err, meals.ErrGeneratorFailed):
		return "generator_failed"
	default:
		return ""
	}
}
