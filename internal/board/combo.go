package board

// LineClear describes one completed line.
type LineClear struct {
	// Cells holds every inside cell of the line, empty if it did not complete.
	Cells []Coord
	// Newly holds the cells that turned Claimed -> Scored in this direction.
	Newly []Coord
}

// Completed reports whether the line completed.
func (l LineClear) Completed() bool {
	return len(l.Cells) > 0
}

// Points returns the points the line is worth (its inside length).
func (l LineClear) Points() int {
	return len(l.Cells)
}

// Outcome is the result of resolving a single move: one entry per line
// direction plus the total points the move earned.
type Outcome struct {
	Row          LineClear
	Column       LineClear
	MainDiagonal LineClear
	AntiDiagonal LineClear
	Points       int
}

// Line returns the entry for direction d.
func (o Outcome) Line(d Direction) LineClear {
	switch d {
	case DirRow:
		return o.Row
	case DirColumn:
		return o.Column
	case DirMainDiagonal:
		return o.MainDiagonal
	case DirAntiDiagonal:
		return o.AntiDiagonal
	default:
		return LineClear{}
	}
}

func (o *Outcome) set(d Direction, l LineClear) {
	switch d {
	case DirRow:
		o.Row = l
	case DirColumn:
		o.Column = l
	case DirMainDiagonal:
		o.MainDiagonal = l
	case DirAntiDiagonal:
		o.AntiDiagonal = l
	}
}

// Completed returns the directions that completed, in evaluation order.
func (o Outcome) Completed() []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if o.Line(d).Completed() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Combo reports whether the move completed at least one line.
func (o Outcome) Combo() bool {
	return o.Points > 0
}

// Scored returns every cell the move turned to Scored, in evaluation order.
func (o Outcome) Scored() []Coord {
	var cells []Coord
	for _, d := range Directions {
		cells = append(cells, o.Line(d).Newly...)
	}
	return cells
}

// Resolve evaluates the four lines through the just-played cell p.
// Every line without an open cell has its claimed cells marked Scored and
// contributes its full inside length to the points. Other lines cannot
// change as a result of a single move, so nothing else is scanned.
func (b *Board) Resolve(p Coord) Outcome {
	var out Outcome
	if !b.geo.Inside(p) {
		return out
	}

	for _, d := range Directions {
		line := b.geo.Line(d, p)
		if !b.complete(line) {
			continue
		}

		lc := LineClear{Cells: line}
		for _, c := range line {
			i := b.index(c)
			if b.cells[i] == Claimed {
				b.cells[i] = Scored
				lc.Newly = append(lc.Newly, c)
			}
		}
		out.set(d, lc)
		out.Points += len(line)
	}
	return out
}

// complete reports whether none of the cells in line is open.
func (b *Board) complete(line []Coord) bool {
	for _, c := range line {
		if b.cells[b.index(c)] == Open {
			return false
		}
	}
	return len(line) > 0
}
