package board

import "fmt"

// Coord is a 0-indexed position in the rectangular W*H coordinate space.
// Row 0 is the apex of the triangle.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// FromDisplay converts the 1-indexed (row, column) pair used on screen
// into a 0-indexed Coord.
func FromDisplay(row, col int) Coord {
	return Coord{Row: row - 1, Col: col - 1}
}

// Display returns the 1-indexed (row, column) pair for this coordinate.
func (c Coord) Display() (row, col int) {
	return c.Row + 1, c.Col + 1
}

// String formats the coordinate in the 1-indexed display convention.
func (c Coord) String() string {
	r, col := c.Display()
	return fmt.Sprintf("[%d, %d]", r, col)
}
