// Package board implements the triangular grid: its geometry, the mutable
// cell states and the detection of completed lines after a move.
package board

import (
	"errors"
	"fmt"
)

// ErrInvalidWidth is returned when a board is requested with an even or
// non-positive width.
var ErrInvalidWidth = errors.New("board: width must be a positive odd number")

// Direction names one of the four lines passing through a cell.
type Direction int

const (
	DirRow Direction = iota
	DirColumn
	DirMainDiagonal
	DirAntiDiagonal
)

// Directions lists every line direction in evaluation order.
var Directions = [...]Direction{DirRow, DirColumn, DirMainDiagonal, DirAntiDiagonal}

// String returns the direction tag.
func (d Direction) String() string {
	switch d {
	case DirRow:
		return "row"
	case DirColumn:
		return "column"
	case DirMainDiagonal:
		return "diag-main"
	case DirAntiDiagonal:
		return "diag-anti"
	default:
		return "unknown"
	}
}

// Geometry describes the triangular layout derived from a single odd width.
// Row r holds 2r+1 inside cells centered in a row of Width columns.
type Geometry struct {
	width  int
	height int
}

// NewGeometry validates the width and derives the layout.
func NewGeometry(width int) (Geometry, error) {
	if width <= 0 || width%2 == 0 {
		return Geometry{}, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	return Geometry{width: width, height: (width + 1) / 2}, nil
}

// Width returns the number of columns (the length of the bottom row).
func (g Geometry) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Geometry) Height() int {
	return g.height
}

// Size returns the number of inside cells, always Height squared.
func (g Geometry) Size() int {
	return g.height * g.height
}

// RowSpan returns the half-open column range [start, end) of inside cells
// in row r. Rows outside the board yield an empty span.
func (g Geometry) RowSpan(r int) (start, end int) {
	if r < 0 || r >= g.height {
		return 0, 0
	}
	n := 2*r + 1
	start = (g.width - n) / 2
	return start, start + n
}

// Inside reports whether c lies within the triangle.
func (g Geometry) Inside(c Coord) bool {
	start, end := g.RowSpan(c.Row)
	return c.Col >= start && c.Col < end
}

// Cells returns every inside coordinate in row-major order.
func (g Geometry) Cells() []Coord {
	cells := make([]Coord, 0, g.Size())
	for r := 0; r < g.height; r++ {
		start, end := g.RowSpan(r)
		for c := start; c < end; c++ {
			cells = append(cells, Coord{Row: r, Col: c})
		}
	}
	return cells
}

// Corners returns the two acute corners of the bottom row, left first.
// A width-1 board has a single corner.
func (g Geometry) Corners() []Coord {
	left := Coord{Row: g.height - 1, Col: 0}
	right := Coord{Row: g.height - 1, Col: g.width - 1}
	if left == right {
		return []Coord{left}
	}
	return []Coord{left, right}
}

// Line returns the inside coordinates of the line through p in direction d,
// ordered by increasing column (by increasing row for columns).
// Returns nil if p itself is outside the triangle.
func (g Geometry) Line(d Direction, p Coord) []Coord {
	if !g.Inside(p) {
		return nil
	}

	var line []Coord
	switch d {
	case DirRow:
		start, end := g.RowSpan(p.Row)
		line = make([]Coord, 0, end-start)
		for c := start; c < end; c++ {
			line = append(line, Coord{Row: p.Row, Col: c})
		}
	case DirColumn:
		for r := 0; r < g.height; r++ {
			if c := (Coord{Row: r, Col: p.Col}); g.Inside(c) {
				line = append(line, c)
			}
		}
	case DirMainDiagonal:
		for k := 0; k < g.width; k++ {
			if c := (Coord{Row: p.Row - p.Col + k, Col: k}); g.Inside(c) {
				line = append(line, c)
			}
		}
	case DirAntiDiagonal:
		for k := 0; k < g.width; k++ {
			if c := (Coord{Row: p.Row + p.Col - k, Col: k}); g.Inside(c) {
				line = append(line, c)
			}
		}
	}
	return line
}
