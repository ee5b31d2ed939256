package meals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDishes(t *testing.T) {
	reply := `Here are your dishes:

Grilled Chicken Salad: 400, 30, 20, 15
Quinoa Veggie Bowl: 350, 15, 50, 10
1. Salmon Rice Bowl: 520, 35, 55, 18
- **Egg Fried Rice**: 480, 14, 70, 16
Broken Line Without Numbers
Too Few Fields: 300, 20, 10
Bad Number: 300, lots, 10, 5
Not A Number: NaN, 1, 2, 3
: 100, 1, 2, 3
Tofu Stir Fry: 310.5 , 22 ,18.25, 14`

	dishes := ParseDishes(reply)
	require.Len(t, dishes, 5)

	names := make([]string, len(dishes))
	for i, d := range dishes {
		names[i] = d.Name
		assert.Equal(t, i, d.Index)
		assert.NotEmpty(t, d.ID)
	}
	assert.Equal(t, []string{
		"Grilled Chicken Salad",
		"Quinoa Veggie Bowl",
		"Salmon Rice Bowl",
		"Egg Fried Rice",
		"Tofu Stir Fry",
	}, names)

	tofu := dishes[4]
	assert.Equal(t, 310.5, tofu.Calories)
	assert.Equal(t, 22.0, tofu.Protein)
	assert.Equal(t, 18.25, tofu.Carbs)
	assert.Equal(t, 14.0, tofu.Fats)
}

func TestParseDishesNormalizesNames(t *testing.T) {
	// "é" written as e + combining acute accent.
	dishes := ParseDishes("Cafe\u0301 Omelette: 300, 20, 5, 22")
	require.Len(t, dishes, 1)
	assert.Equal(t, "Caf\u00e9 Omelette", dishes[0].Name)
}

func TestParseDishesEmpty(t *testing.T) {
	assert.Empty(t, ParseDishes(""))
	assert.Empty(t, ParseDishes("I cannot help with that."))
}

func TestParseGoals(t *testing.T) {
	t.Run("full object with chatter", func(t *testing.T) {
		g, err := ParseGoals(`Sure! {"calories": 2400, "protein": 180, "carbs": 250, "fats": 70, "exercise_plan": "Lift 3x weekly"} Enjoy.`)
		require.NoError(t, err)
		assert.Equal(t, Goals{Calories: 2400, Protein: 180, Carbs: 250, Fats: 70, ExercisePlan: "Lift 3x weekly"}, g)
	})

	t.Run("numeric strings", func(t *testing.T) {
		g, err := ParseGoals(`{"calories": "1800", "protein": " 120 ", "carbs": 150, "fats": 60}`)
		require.NoError(t, err)
		assert.Equal(t, 1800.0, g.Calories)
		assert.Equal(t, 120.0, g.Protein)
		assert.Equal(t, defaultExercisePlan, g.ExercisePlan)
	})

	t.Run("missing fields use defaults", func(t *testing.T) {
		g, err := ParseGoals(`{"calories": 2100}`)
		require.NoError(t, err)
		want := DefaultGoals()
		want.Calories = 2100
		assert.Equal(t, want, g)
	})

	t.Run("no object", func(t *testing.T) {
		g, err := ParseGoals("I'd recommend eating well.")
		require.NoError(t, err)
		assert.Equal(t, DefaultGoals(), g)
	})

	t.Run("malformed object", func(t *testing.T) {
		_, err := ParseGoals(`{"calories": 2000,}`)
		assert.Error(t, err)
	})

	t.Run("non-numeric field", func(t *testing.T) {
		_, err := ParseGoals(`{"protein": "plenty"}`)
		assert.ErrorContains(t, err, "protein")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := ParseGoals(`{"fats": [1, 2]}`)
		assert.Error(t, err)
	})
}
