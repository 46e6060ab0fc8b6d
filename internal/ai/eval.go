// Package ai selects moves for one side by exploring future board states
// with a depth-bounded minimax search.
package ai

import (
	"fmt"
	"strings"
)

// Evaluation selects how the search scores a line of play.
type Evaluation string

const (
	// EvalLegacy weights each move's immediate points by the remaining depth
	// and adds them up for both sides, minimizing on the opponent's turn.
	// The opponent's own points therefore count in the AI's favour, which
	// makes the policy easy to exploit. Kept as the default so the classic
	// AI keeps playing the way it always has.
	EvalLegacy Evaluation = "legacy"

	// EvalDifferential scores a line of play as the AI's points minus the
	// opponent's points over the searched horizon.
	EvalDifferential Evaluation = "differential"
)

// ParseEvaluation converts a config or flag value to an Evaluation.
// The empty string selects EvalLegacy.
func ParseEvaluation(s string) (Evaluation, error) {
	switch Evaluation(strings.ToLower(strings.TrimSpace(s))) {
	case "", EvalLegacy:
		return EvalLegacy, nil
	case EvalDifferential:
		return EvalDifferential, nil
	default:
		return "", fmt.Errorf("ai: unknown evaluation %q (want legacy or differential)", s)
	}
}

// combine folds a move's points and the value of the position it leads to
// into the move's value at a node with depth plies remaining.
// sign is +1 when the searching side made the move and -1 otherwise.
func (e Evaluation) combine(points, child, depth, sign int) int {
	if e == EvalDifferential {
		return sign*points + child
	}
	if depth <= 1 {
		return points
	}
	return points*depth + child*(depth-1)
}
