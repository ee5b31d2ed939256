package ranking

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Scorer ranks candidates against a goal vector. It holds configuration only and
// is safe for concurrent use; every Rank call is independent.
type Scorer struct {
	anchor          Anchor
	frontierEnabled bool
	names           []string
	logger          *slog.Logger
}

// NewScorer creates a Scorer with the given anchor mode and frontier setting.
func NewScorer(anchor Anchor, frontierEnabled bool, logger *slog.Logger) *Scorer {
	if anchor == "" {
		anchor = AnchorCandidate
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{
		anchor:          anchor,
		frontierEnabled: frontierEnabled,
		logger:          logger,
	}
}

// WithDimensionNames returns a copy of s that labels dimensions with names.
// Names only apply to goals with exactly len(names) dimensions; other goals are
// labelled by index.
func (s *Scorer) WithDimensionNames(names ...string) *Scorer {
	c := *s
	c.names = append([]string(nil), names...)
	return &c
}

// WithAnchor returns a copy of s using anchor.
func (s *Scorer) WithAnchor(anchor Anchor) *Scorer {
	c := *s
	c.anchor = anchor
	return &c
}

// Anchor returns the scorer's anchor mode.
func (s *Scorer) Anchor() Anchor { return s.anchor }

// Rank scores every candidate against goal and returns them ordered by descending
// composite score. Equal scores keep their input order. The input is not modified.
func (s *Scorer) Rank(goal GoalVector, candidates []Candidate) (*Ranking, error) {
	if err := Validate(goal, candidates); err != nil {
		return nil, err
	}

	scored := make([]ScoredCandidate, len(candidates))
	for i, c := range candidates {
		scored[i] = ScoredCandidate{
			Candidate: Candidate{
				ID:         c.ID,
				Name:       c.Name,
				Attributes: append([]float64(nil), c.Attributes...),
			},
			Position:   i,
			Dimensions: make([]DimensionScore, len(goal)),
		}
	}

	summaries := make([]DimensionSummary, len(goal))
	totals := make([]float64, len(candidates))
	values := make([]float64, len(candidates))

	for d, target := range goal {
		for i, c := range candidates {
			values[i] = c.Attributes[d]
		}
		reference := s.referencePoint(values, target)
		name := s.dimensionName(d, len(goal))
		summaries[d] = DimensionSummary{Name: name, Goal: target, Reference: reference}

		for i, v := range values {
			diff := math.Abs(reference - v)
			score := proximity(diff, target)
			totals[i] += score
			scored[i].Dimensions[d] = DimensionScore{
				Name:      name,
				Value:     v,
				Reference: reference,
				Diff:      diff,
				Score:     score,
			}
		}
	}

	n := float64(len(goal))
	for i := range scored {
		scored[i].Score = clamp(totals[i]/n, 0, 1)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}

	ranking := &Ranking{
		Anchor:     s.anchor,
		Dimensions: summaries,
		Candidates: scored,
	}
	if s.frontierEnabled {
		ranking.Frontier = ComputeFrontier(scored)
	}

	top := scored[0]
	s.logger.Debug("ranking computed",
		"anchor", s.anchor,
		"candidates", len(scored),
		"dimensions", len(goal),
		"top_id", top.ID,
		"top_score", top.Score,
	)
	return ranking, nil
}

// referencePoint picks the value distances are measured from on one dimension.
func (s *Scorer) referencePoint(values []float64, target float64) float64 {
	if s.anchor == AnchorGoal {
		return target
	}
	sorted := SortValues(values)
	return sorted[NearestIndex(sorted, target)]
}

func (s *Scorer) dimensionName(d, dims int) string {
	if len(s.names) == dims && s.names[d] != "" {
		return s.names[d]
	}
	return fmt.Sprintf("dim_%d", d)
}

// proximity is 1 - diff/goal clamped to [0, 1]. A zero goal counts as satisfied.
func proximity(diff, goal float64) float64 {
	if goal == 0 {
		return 1.0
	}
	return clamp(1-diff/goal, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
