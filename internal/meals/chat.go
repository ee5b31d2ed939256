package meals

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyMessage       = errors.New("message is required")
	ErrMessageTooLong     = errors.New("message too long")
	ErrUnknownPersonality = errors.New("unknown personality")
)

// DefaultPersonality is used when a chat request names none. It adds no style prefix.
const DefaultPersonality = "friendly and supportive"

// chatContextDishes is how many recommended dish names go into a chat prompt.
const chatContextDishes = 5

var personalityPrefixes = map[string]string{
	DefaultPersonality:           "",
	"pirate chef":                "Respond like a pirate chef. Use pirate language and cooking terms. ",
	"zen wellness guru":          "Respond like a zen wellness guru. Be calm, peaceful, and mindful. ",
	"scientific researcher":      "Respond like a scientific researcher. Use technical terms and cite studies. ",
	"enthusiastic fitness coach": "Respond like an enthusiastic fitness coach. Be energetic and motivating! ",
	"wise health mentor":         "Respond like a wise health mentor. Be thoughtful and share wisdom. ",
	"casual buddy":               "Respond like a casual friend. Be relaxed and conversational. ",
}

// Personalities lists the accepted personality names in sorted order.
func Personalities() []string {
	names := make([]string, 0, len(personalityPrefixes))
	for name := range personalityPrefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChatRequest is one stateless question to the nutrition assistant. Goals and
// Dishes, when given, are passed to the model as context; Dishes is in
// recommendation order.
type ChatRequest struct {
	Message     string   `json:"message"`
	Personality string   `json:"personality,omitempty"`
	Goals       *Goals   `json:"goals,omitempty"`
	Dishes      []string `json:"dishes,omitempty"`
}

// ChatPrompt builds the assistant prompt: the personality's style prefix, the
// user's goals and the top recommended dishes, then the question itself.
func ChatPrompt(message, personality string, goals *Goals, dishes []string) string {
	var b strings.Builder
	b.WriteString(personalityPrefixes[personality])
	fmt.Fprintf(&b, "You are a %s nutrition AI assistant named Platter. ", personality)

	if goals != nil {
		b.WriteString("\n\nUser's nutrition goals:\n")
		fmt.Fprintf(&b, "- Daily calories: %d kcal\n", int(goals.Calories))
		fmt.Fprintf(&b, "- Protein: %dg\n", int(goals.Protein))
		fmt.Fprintf(&b, "- Carbs: %dg\n", int(goals.Carbs))
		fmt.Fprintf(&b, "- Fats: %dg\n", int(goals.Fats))
	}

	var names []string
	for _, d := range dishes {
		if d = strings.TrimSpace(d); d != "" {
			names = append(names, d)
		}
		if len(names) == chatContextDishes {
			break
		}
	}
	if len(names) > 0 {
		fmt.Fprintf(&b, "\n\nRecommended dishes: %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(&b, "\n\nUser question: %s", message)
	return b.String()
}

// Chat answers one question in the requested personality. It returns the reply
// and the personality that was used.
func (g *Generator) Chat(ctx context.Context, req ChatRequest) (string, string, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return "", "", ErrEmptyMessage
	}
	if n := len([]rune(message)); n > g.cfg.MaxMessageChars {
		return "", "", fmt.Errorf("%w: %d characters, limit is %d", ErrMessageTooLong, n, g.cfg.MaxMessageChars)
	}

	personality := strings.ToLower(strings.TrimSpace(req.Personality))
	if personality == "" {
		personality = DefaultPersonality
	}
	if _, ok := personalityPrefixes[personality]; !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownPersonality, req.Personality)
	}

	reply, err := g.complete(ctx, "chat", ChatPrompt(message, personality, req.Goals, req.Dishes))
	if err != nil {
		return "", "", err
	}
	g.logger.Debug("chat answered", "personality", personality, "reply_chars", len(reply))
	return reply, personality, nil
}
