package meals

import (
	"math"

	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

// Dish is one generated meal candidate. Index is its position in the generator's reply.
type Dish struct {
	ID          string  `json:"dish_id"`
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
}

// Candidate converts the dish to a ranking candidate aligned with Dimensions.
func (d Dish) Candidate() ranking.Candidate {
	return ranking.Candidate{
		ID:         d.ID,
		Name:       d.Name,
		Attributes: []float64{d.Calories, d.Protein, d.Carbs, d.Fats},
	}
}

// Candidates converts dishes in order.
func Candidates(dishes []Dish) []ranking.Candidate {
	out := make([]ranking.Candidate, len(dishes))
	for i, d := range dishes {
		out[i] = d.Candidate()
	}
	return out
}

// RankedDish is a dish with its match score for display.
type RankedDish struct {
	Dish
	Rank         int                      `json:"rank"`
	Score        float64                  `json:"score"`
	MatchPercent int                      `json:"match_percent"`
	Breakdown    []ranking.DimensionScore `json:"breakdown"`
}

// RankDishes joins a ranking back onto the dishes it was computed from.
// r must have been produced from Candidates(dishes).
func RankDishes(dishes []Dish, r *ranking.Ranking) []RankedDish {
	out := make([]RankedDish, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		permille := math.Round(c.Score * 1000)
		out = append(out, RankedDish{
			Dish:         dishes[c.Position],
			Rank:         c.Rank,
			Score:        permille / 1000,
			MatchPercent: int(permille) / 10,
			Breakdown:    c.Dimensions,
		})
	}
	return out
}
