package board

import (
	"errors"
	"fmt"
	"slices"
)

// ErrMoveRejected is returned when a move targets a cell that is not open:
// either outside the triangle or already claimed or scored.
var ErrMoveRejected = errors.New("board: move rejected")

// Cell is the lifecycle state of a position on the board.
// Inside cells only ever move forward: Open -> Claimed -> Scored.
type Cell uint8

const (
	Invalid Cell = iota // Padding outside the triangle
	Open
	Claimed
	Scored
)

// String returns a human-readable name for the cell state.
func (c Cell) String() string {
	switch c {
	case Invalid:
		return "invalid"
	case Open:
		return "open"
	case Claimed:
		return "claimed"
	case Scored:
		return "scored"
	default:
		return "unknown"
	}
}

// Board owns the grid of cell states and the ordered set of open cells.
type Board struct {
	geo   Geometry
	cells []Cell  // Row-major, length Width*Height
	open  []Coord // Row-major order of the initial inside set
}

// New creates an empty board of the given odd width.
func New(width int) (*Board, error) {
	geo, err := NewGeometry(width)
	if err != nil {
		return nil, err
	}

	b := &Board{
		geo:   geo,
		cells: make([]Cell, geo.Width()*geo.Height()),
		open:  geo.Cells(),
	}
	for _, c := range b.open {
		b.cells[b.index(c)] = Open
	}
	return b, nil
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Row*b.geo.Width() + c.Col
}

// Geometry returns the board's immutable layout.
func (b *Board) Geometry() Geometry {
	return b.geo
}

// Width returns the board width.
func (b *Board) Width() int {
	return b.geo.Width()
}

// Height returns the board height.
func (b *Board) Height() int {
	return b.geo.Height()
}

// State returns the state of the cell at c. Outside coordinates are Invalid.
func (b *Board) State(c Coord) Cell {
	if !b.geo.Inside(c) {
		return Invalid
	}
	return b.cells[b.index(c)]
}

// IsOpen reports whether c can be claimed.
func (b *Board) IsOpen(c Coord) bool {
	return b.State(c) == Open
}

// Open returns a copy of the open cells in enumeration order.
func (b *Board) Open() []Coord {
	return slices.Clone(b.open)
}

// OpenCount returns the number of open cells.
func (b *Board) OpenCount() int {
	return len(b.open)
}

// Terminal reports whether the game is over (no open cells remain).
func (b *Board) Terminal() bool {
	return len(b.open) == 0
}

// Apply claims the open cell at c.
// It returns ErrMoveRejected and leaves the board untouched if c is not open.
func (b *Board) Apply(c Coord) error {
	if !b.IsOpen(c) {
		return fmt.Errorf("%w: %s is not an open field", ErrMoveRejected, c)
	}

	b.cells[b.index(c)] = Claimed
	i := slices.Index(b.open, c)
	b.open = slices.Delete(b.open, i, i+1)
	return nil
}

// ApplyDisplay claims a cell given in the 1-indexed display convention.
func (b *Board) ApplyDisplay(row, col int) error {
	return b.Apply(FromDisplay(row, col))
}

// Play applies the move at c and resolves the lines it completes.
func (b *Board) Play(c Coord) (Outcome, error) {
	if err := b.Apply(c); err != nil {
		return Outcome{}, err
	}
	return b.Resolve(c), nil
}

// Line returns the inside coordinates of the line through c in direction d.
func (b *Board) Line(d Direction, c Coord) []Coord {
	return b.geo.Line(d, c)
}

// Row returns the inside coordinates of row r.
func (b *Board) Row(r int) []Coord {
	start, _ := b.geo.RowSpan(r)
	return b.geo.Line(DirRow, Coord{Row: r, Col: start})
}

// Column returns the inside coordinates of column c, top to bottom.
func (b *Board) Column(c int) []Coord {
	return b.geo.Line(DirColumn, Coord{Row: b.geo.Height() - 1, Col: c})
}

// MainDiagonal returns the line through c where row-col is constant.
func (b *Board) MainDiagonal(c Coord) []Coord {
	return b.geo.Line(DirMainDiagonal, c)
}

// AntiDiagonal returns the line through c where row+col is constant.
func (b *Board) AntiDiagonal(c Coord) []Coord {
	return b.geo.Line(DirAntiDiagonal, c)
}

// Clone returns a deep copy that shares no storage with b.
func (b *Board) Clone() *Board {
	return &Board{
		geo:   b.geo,
		cells: slices.Clone(b.cells),
		open:  slices.Clone(b.open),
	}
}

// Snapshot captures the complete board state for rendering and tests.
type Snapshot struct {
	Width  int
	Height int
	Cells  [][]Cell // Height rows of Width cells
	Open   []Coord
}

// Snapshot returns a value copy of the current board state.
func (b *Board) Snapshot() Snapshot {
	w, h := b.geo.Width(), b.geo.Height()
	rows := make([][]Cell, h)
	for r := 0; r < h; r++ {
		rows[r] = slices.Clone(b.cells[r*w : (r+1)*w])
	}
	return Snapshot{
		Width:  w,
		Height: h,
		Cells:  rows,
		Open:   slices.Clone(b.open),
	}
}

// Counts returns how many inside cells are in each state.
func (b *Board) Counts() (open, claimed, scored int) {
	for _, c := range b.cells {
		switch c {
		case Open:
			open++
		case Claimed:
			claimed++
		case Scored:
			scored++
		}
	}
	return open, claimed, scored
}
