package meals

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Platter/internal/config"
)

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockLLM) Backend() string { return "mock" }

func testPlannerConfig() config.PlannerConfig {
	return config.Defaults().Planner
}

func newTestGenerator(client *mockLLM) *Generator {
	return NewGenerator(client, testPlannerConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGeneratorGoals(t *testing.T) {
	client := &mockLLM{}
	client.On("Complete", mock.Anything, systemPrompt, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Profile: vegetarian runner, 34") && strings.Contains(p, "Goal: lose weight")
	})).Return(`{"calories": 1900, "protein": 110, "carbs": 210, "fats": 60, "exercise_plan": "Run 4x weekly"}`, nil)

	g, err := newTestGenerator(client).Goals(context.Background(), "  vegetarian runner, 34  ", "lose weight")
	require.NoError(t, err)
	assert.Equal(t, 1900.0, g.Calories)
	assert.Equal(t, "Run 4x weekly", g.ExercisePlan)
	client.AssertExpectations(t)
}

func TestGeneratorGoalsProfileLimits(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		client := &mockLLM{}
		_, err := newTestGenerator(client).Goals(context.Background(), "tiny", "bulk")
		assert.ErrorIs(t, err, ErrProfileTooShort)
		client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("truncated", func(t *testing.T) {
		long := strings.Repeat("a", 800)
		client := &mockLLM{}
		client.On("Complete", mock.Anything, mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, strings.Repeat("a", 500)) && !strings.Contains(p, strings.Repeat("a", 501))
		})).Return(`{}`, nil)

		g, err := newTestGenerator(client).Goals(context.Background(), long, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultGoals(), g)
		client.AssertExpectations(t)
	})
}

func TestGeneratorGoalsUpstreamError(t *testing.T) {
	client := &mockLLM{}
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("connection refused"))

	_, err := newTestGenerator(client).Goals(context.Background(), "a long enough profile", "maintain")
	require.ErrorIs(t, err, ErrGeneratorFailed)
	assert.Contains(t, err.Error(), "goals: connection refused")
}

func TestGeneratorDishes(t *testing.T) {
	ingredients := []string{" chicken ", "", "rice", "broccoli", "eggs", "tofu", "beans", "oats", "milk", "kale", "lentils", "salmon", "feta"}

	client := &mockLLM{}
	client.On("Complete", mock.Anything, systemPrompt, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Generate 20 meal dishes using these ingredients: chicken, rice,") &&
			strings.Contains(p, "lentils.") && !strings.Contains(p, "salmon")
	})).Return("Chicken Rice: 600, 45, 70, 12\nnot a dish\nKale Omelette: 350, 25, 8, 22", nil)

	dishes, err := newTestGenerator(client).Dishes(context.Background(), ingredients)
	require.NoError(t, err)
	require.Len(t, dishes, 2)
	assert.Equal(t, "Chicken Rice", dishes[0].Name)
	assert.Equal(t, 1, dishes[1].Index)
	client.AssertExpectations(t)
}

func TestGeneratorDishesErrors(t *testing.T) {
	t.Run("no ingredients", func(t *testing.T) {
		_, err := newTestGenerator(&mockLLM{}).Dishes(context.Background(), []string{" ", ""})
		assert.ErrorIs(t, err, ErrNoIngredients)
	})

	t.Run("no parsable dishes", func(t *testing.T) {
		client := &mockLLM{}
		client.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("Sorry, I can't do that.", nil)
		_, err := newTestGenerator(client).Dishes(context.Background(), []string{"rice"})
		assert.ErrorIs(t, err, ErrNoDishes)
		assert.ErrorIs(t, err, ErrGeneratorFailed)
	})
}
