package ai

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/JPatryk13/triangle-game/internal/board"
	"github.com/JPatryk13/triangle-game/internal/core"
)

// ErrIllegalSearch is returned when a move is requested for a finished game.
var ErrIllegalSearch = errors.New("ai: search requested on a terminal board")

// Options controls a search.
type Options struct {
	Depth   int        // Plies to look ahead, values below 1 are treated as 1
	Eval    Evaluation // Scoring of a line of play, defaults to EvalLegacy
	Opening bool       // Take an open bottom corner before searching
	Workers int        // Parallel workers for the top-level moves, <= 1 is sequential
	Rand    *rand.Rand // Picks between two open corners; nil always takes the left one
}

// Candidate is a top-level move together with its searched value.
type Candidate struct {
	Move  board.Coord
	Value int
}

// Result describes the move chosen by Search.
type Result struct {
	Move       board.Coord
	Value      int
	Opening    bool        // Chosen by the corner heuristic, no search was run
	Candidates []Candidate // Top-level values in open-set order
	Nodes      int64       // Positions visited
}

// Search picks the best move for me on b. The board is never modified:
// every hypothetical move is played on a private clone.
// Among equally valued moves the first one in open-set order wins.
func Search(b *board.Board, me core.PlayerID, opts Options) (Result, error) {
	if b.Terminal() {
		return Result{}, ErrIllegalSearch
	}

	if opts.Opening {
		if c, ok := Opening(b, opts.Rand); ok {
			return Result{Move: c, Opening: true}, nil
		}
	}

	s := newSearcher(me, opts)
	candidates := s.root(b)

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Value > best.Value {
			best = c
		}
	}

	return Result{
		Move:       best.Move,
		Value:      best.Value,
		Candidates: candidates,
		Nodes:      s.nodes.Load(),
	}, nil
}

// Evaluate returns the searched value of every open cell for me, without
// applying the opening heuristic.
func Evaluate(b *board.Board, me core.PlayerID, opts Options) ([]Candidate, error) {
	if b.Terminal() {
		return nil, ErrIllegalSearch
	}
	return newSearcher(me, opts).root(b), nil
}

// Opening returns an open acute corner of the bottom row. When both are
// open one is picked at random; with a nil rng the left corner is taken.
func Opening(b *board.Board, rng *rand.Rand) (board.Coord, bool) {
	var open []board.Coord
	for _, c := range b.Geometry().Corners() {
		if b.IsOpen(c) {
			open = append(open, c)
		}
	}

	switch len(open) {
	case 0:
		return board.Coord{}, false
	case 1:
		return open[0], true
	default:
		if rng == nil {
			return open[0], true
		}
		return open[rng.Intn(len(open))], true
	}
}

type searcher struct {
	me      core.PlayerID
	depth   int
	eval    Evaluation
	workers int
	nodes   atomic.Int64
}

func newSearcher(me core.PlayerID, opts Options) *searcher {
	depth := opts.Depth
	if depth < 1 {
		depth = 1
	}
	eval := opts.Eval
	if eval == "" {
		eval = EvalLegacy
	}
	return &searcher{
		me:      me,
		depth:   depth,
		eval:    eval,
		workers: opts.Workers,
	}
}

// root computes the exact value of every top-level move. Values are stored
// by candidate index so the parallel and sequential searches agree.
func (s *searcher) root(b *board.Board) []Candidate {
	moves := b.Open()
	candidates := make([]Candidate, len(moves))

	if s.workers <= 1 || len(moves) < 2 {
		for i, m := range moves {
			candidates[i] = Candidate{Move: m, Value: s.move(b, m, s.depth, s.me, math.MinInt, math.MaxInt)}
		}
		return candidates
	}

	tasks := make(chan int, len(moves))
	for i := range moves {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for w, n := 0, min(s.workers, len(moves)); w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				candidates[i] = Candidate{Move: moves[i], Value: s.move(b, moves[i], s.depth, s.me, math.MinInt, math.MaxInt)}
			}
		}()
	}
	wg.Wait()
	return candidates
}

// move plays m for mover on a clone of b and returns the move's value with
// depth plies remaining (the move itself included).
func (s *searcher) move(b *board.Board, m board.Coord, depth int, mover core.PlayerID, alpha, beta int) int {
	s.nodes.Add(1)

	child := b.Clone()
	out, err := child.Play(m)
	if err != nil {
		// Moves come from the open set, so this cannot happen.
		panic(err)
	}

	sign := 1
	if mover != s.me {
		sign = -1
	}

	sub := 0
	if depth > 1 && !child.Terminal() {
		if s.eval == EvalDifferential {
			shift := sign * out.Points
			sub = s.node(child, depth-1, mover.Opponent(), sat(alpha, -shift), sat(beta, -shift))
		} else {
			sub = s.node(child, depth-1, mover.Opponent(), math.MinInt, math.MaxInt)
		}
	}
	return s.eval.combine(out.Points, sub, depth, sign)
}

// node returns the minimax value of b with toMove to play. The searching
// side maximizes, its opponent minimizes. Alpha-beta bounds are only
// meaningful for the differential evaluation; legacy passes an open window.
func (s *searcher) node(b *board.Board, depth int, toMove core.PlayerID, alpha, beta int) int {
	maximizing := toMove == s.me
	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	for _, m := range b.Open() {
		v := s.move(b, m, depth, toMove, alpha, beta)
		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// sat adds d to a window bound without overflowing the infinite bounds.
func sat(bound, d int) int {
	if bound == math.MinInt || bound == math.MaxInt {
		return bound
	}
	return bound + d
}
