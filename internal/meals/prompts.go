package meals

import (
	"fmt"
	"strings"
)

// GoalsPrompt asks for daily nutrition targets as a single JSON object.
func GoalsPrompt(profile, objective string) string {
	return fmt.Sprintf(`Profile: %s
Goal: %s

Create a nutrition plan with daily targets. Return ONLY JSON:
{"calories": <number>, "protein": <number>, "carbs": <number>, "fats": <number>, "exercise_plan": "<brief plan>"}`,
		profile, objective)
}

// DishesPrompt asks for count dishes, one per line, in the format ParseDishes reads.
func DishesPrompt(ingredients []string, count int) string {
	return fmt.Sprintf(`Generate %d meal dishes using these ingredients: %s.
Strictly follow this format for each dish (one per line):

DishNameWithoutColonsOrCommas: Calories, Protein (g), Carbs (g), Fats (g)

Example:
Grilled Chicken Salad: 400, 30, 20, 15
Quinoa Veggie Bowl: 350, 15, 50, 10
`, count, strings.Join(ingredients, ", "))
}
