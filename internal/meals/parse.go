package meals

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// listMarker matches bullets and numbering models like to prefix lines with.
var listMarker = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)

// ParseDishes extracts dishes from lines of the form
//
//	Name: calories, protein, carbs, fats
//
// Lines without a colon, without exactly four fields, or with a field that is not
// a finite number are skipped. Dishes keep their reply order in Index.
func ParseDishes(reply string) []Dish {
	var dishes []Dish
	for _, line := range strings.Split(reply, "\n") {
		namePart, nutrientsPart, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name := cleanName(namePart)
		if name == "" {
			continue
		}

		fields := strings.Split(nutrientsPart, ",")
		if len(fields) != 4 {
			continue
		}
		var values [4]float64
		valid := true
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				valid = false
				break
			}
			values[i] = v
		}
		if !valid {
			continue
		}

		dishes = append(dishes, Dish{
			ID:       uuid.NewString(),
			Index:    len(dishes),
			Name:     name,
			Calories: values[0],
			Protein:  values[1],
			Carbs:    values[2],
			Fats:     values[3],
		})
	}
	return dishes
}

func cleanName(s string) string {
	s = listMarker.ReplaceAllString(s, "")
	s = strings.Trim(strings.TrimSpace(s), "*_`\"")
	return norm.NFC.String(strings.TrimSpace(s))
}

// ParseGoals reads the first {...} object in a generator reply. A reply with no
// object yields DefaultGoals; missing fields fall back to their defaults.
// Numeric fields may be JSON numbers or numeric strings.
func ParseGoals(reply string) (Goals, error) {
	goals := DefaultGoals()

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return goals, nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err != nil {
		return Goals{}, fmt.Errorf("parse goals: %w", err)
	}

	fields := []struct {
		key string
		dst *float64
	}{
		{DimCalories, &goals.Calories},
		{DimProtein, &goals.Protein},
		{DimCarbs, &goals.Carbs},
		{DimFats, &goals.Fats},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok || v == nil {
			continue
		}
		n, err := toFloat(v)
		if err != nil {
			return Goals{}, fmt.Errorf("parse goals: %s: %w", f.key, err)
		}
		*f.dst = n
	}
	if plan, ok := raw["exercise_plan"].(string); ok && strings.TrimSpace(plan) != "" {
		goals.ExercisePlan = strings.TrimSpace(plan)
	}
	return goals, nil
}

func toFloat(v any) (float64, error) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", t)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("non-finite value %v", n)
	}
	return n, nil
}
