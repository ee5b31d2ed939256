package ranking

// GoalVector holds one desired target value per attribute dimension.
// Its order defines the dimension index candidates are aligned against.
type GoalVector []float64

// Candidate is an item being ranked. Attributes align index-for-index with the GoalVector.
type Candidate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Attributes []float64 `json:"attributes"`
}

// DimensionScore captures one dimension's contribution to a candidate's composite score.
type DimensionScore struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Reference float64 `json:"reference"`
	Diff      float64 `json:"diff"`
	Score     float64 `json:"score"`
}

// ScoredCandidate is a Candidate annotated with its composite score.
// Position is the candidate's index in the input; Rank is its 1-based place in the output.
type ScoredCandidate struct {
	Candidate
	Score      float64          `json:"score"`
	Position   int              `json:"position"`
	Rank       int              `json:"rank"`
	Dimensions []DimensionScore `json:"dimensions"`
}

// DimensionSummary describes how a dimension was scored for the whole candidate set.
type DimensionSummary struct {
	Name      string  `json:"name"`
	Goal      float64 `json:"goal"`
	Reference float64 `json:"reference"`
}

// Ranking is the engine's output: candidates ordered by descending score,
// ties kept in input order.
type Ranking struct {
	Anchor     Anchor             `json:"anchor"`
	Dimensions []DimensionSummary `json:"dimensions"`
	Candidates []ScoredCandidate  `json:"candidates"`
	Frontier   []string           `json:"frontier,omitempty"`
}

// Top returns the best-scoring candidate, or false for an empty ranking.
func (r *Ranking) Top() (ScoredCandidate, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return ScoredCandidate{}, false
	}
	return r.Candidates[0], true
}
