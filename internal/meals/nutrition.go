package meals

import "github.com/MikeSquared-Agency/Platter/internal/ranking"

// Dimension names, in goal-vector order.
const (
	DimCalories = "calories"
	DimProtein  = "protein"
	DimCarbs    = "carbs"
	DimFats     = "fats"
)

// Dimensions lists the nutrition dimensions in the order goal vectors and dish
// attribute vectors use.
func Dimensions() []string {
	return []string{DimCalories, DimProtein, DimCarbs, DimFats}
}

const defaultExercisePlan = "Regular exercise recommended"

// Goals are daily (or per-meal) nutrition targets. Protein, carbs and fats are grams.
type Goals struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	ExercisePlan string  `json:"exercise_plan,omitempty"`
}

// DefaultGoals is used when the generator's reply carries no usable plan.
func DefaultGoals() Goals {
	return Goals{
		Calories:     2000,
		Protein:      150,
		Carbs:        200,
		Fats:         65,
		ExercisePlan: defaultExercisePlan,
	}
}

// PerMeal splits daily goals evenly across meals. meals < 1 is treated as 1.
func (g Goals) PerMeal(meals int) Goals {
	if meals < 1 {
		meals = 1
	}
	n := float64(meals)
	return Goals{
		Calories:     g.Calories / n,
		Protein:      g.Protein / n,
		Carbs:        g.Carbs / n,
		Fats:         g.Fats / n,
		ExercisePlan: g.ExercisePlan,
	}
}

// Vector returns the goals as a ranking goal vector, ordered like Dimensions.
func (g Goals) Vector() ranking.GoalVector {
	return ranking.GoalVector{g.Calories, g.Protein, g.Carbs, g.Fats}
}
