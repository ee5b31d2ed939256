package ranking

import "fmt"

// Anchor selects what a dimension's reference point is measured from.
type Anchor string

const (
	// AnchorCandidate uses the candidate value nearest the goal as the reference point,
	// so scores measure closeness to the best achievable value in the set.
	AnchorCandidate Anchor = "candidate"
	// AnchorGoal uses the goal value itself as the reference point.
	AnchorGoal Anchor = "goal"
)

// ParseAnchor resolves an anchor name. The empty string selects AnchorCandidate.
func ParseAnchor(name string) (Anchor, error) {
	switch Anchor(name) {
	case "", AnchorCandidate:
		return AnchorCandidate, nil
	case AnchorGoal:
		return AnchorGoal, nil
	default:
		return "", fmt.Errorf("unknown anchor %q (want %q or %q)", name, AnchorCandidate, AnchorGoal)
	}
}
