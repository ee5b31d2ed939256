package hermes

import (
	"time"

	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

// RankRequestEvent asks the planner to rank a candidate set. RequestID is echoed
// back as the ranking ID so callers can subscribe to the result subjects up front.
type RankRequestEvent struct {
	RequestID  string              `json:"request_id,omitempty"`
	Goal       ranking.GoalVector  `json:"goal"`
	Candidates []ranking.Candidate `json:"candidates"`
	Anchor     string              `json:"anchor,omitempty"`
	Dimensions []string            `json:"dimensions,omitempty"`
}

type RankingCompletedEvent struct {
	RankingID      string           `json:"ranking_id"`
	Anchor         string           `json:"anchor"`
	CandidateCount int              `json:"candidate_count"`
	TopID          string           `json:"top_id"`
	TopScore       float64          `json:"top_score"`
	Ranking        *ranking.Ranking `json:"ranking,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

type RankingFailedEvent struct {
	RankingID string    `json:"ranking_id"`
	Error     string    `json:"error"`
	Code      string    `json:"code,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type PlanCompletedEvent struct {
	PlanID    string    `json:"plan_id"`
	DishCount int       `json:"dish_count"`
	TopDish   string    `json:"top_dish"`
	TopScore  float64   `json:"top_score"`
	Timestamp time.Time `json:"timestamp"`
}

type PlanFailedEvent struct {
	PlanID    string    `json:"plan_id"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
