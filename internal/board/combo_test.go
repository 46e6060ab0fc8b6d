package board

import "testing"

func TestWidthThreeRowCompletesOnThirdClaim(t *testing.T) {
	orders := [][]Coord{
		{At(1, 0), At(1, 1), At(1, 2)},
		{At(1, 2), At(1, 0), At(1, 1)},
		{At(1, 1), At(1, 2), At(1, 0)},
	}

	for _, order := range orders {
		b := mustBoard(t, 3)
		for i, c := range order {
			out, err := b.Play(c)
			if err != nil {
				t.Fatalf("Play(%v) failed: %v", c, err)
			}
			last := i == len(order)-1
			if out.Row.Completed() != last {
				t.Fatalf("order %v: row completed=%v after claim %d", order, out.Row.Completed(), i+1)
			}
			if last && out.Row.Points() != 3 {
				t.Errorf("order %v: row worth %d, expected 3", order, out.Row.Points())
			}
		}

		for _, c := range b.Row(1) {
			if b.State(c) != Scored {
				t.Errorf("order %v: %v is %v, expected scored", order, c, b.State(c))
			}
		}
		if b.Terminal() {
			t.Fatal("board should not be terminal while the apex is open")
		}

		if _, err := b.Play(At(0, 1)); err != nil {
			t.Fatal(err)
		}
		if !b.Terminal() {
			t.Error("board should be terminal after the apex is claimed")
		}
	}
}

func TestWidthFiveMainDiagonal(t *testing.T) {
	b := mustBoard(t, 5)
	diag := []Coord{At(0, 2), At(1, 3), At(2, 4)}

	for i, c := range diag {
		out, err := b.Play(c)
		if err != nil {
			t.Fatalf("Play(%v) failed: %v", c, err)
		}
		if i < 2 && out.MainDiagonal.Completed() {
			t.Fatalf("main diagonal completed early after claim %d", i+1)
		}
		if i == 2 {
			if !out.MainDiagonal.Completed() || out.MainDiagonal.Points() != 3 {
				t.Fatalf("main diagonal = %+v, expected 3 points", out.MainDiagonal)
			}
		}
	}
}

func TestDoubleComboSumsPoints(t *testing.T) {
	b := mustBoard(t, 5)

	// The bottom-left corner is alone in its column and its main diagonal
	out, err := b.Play(At(2, 0))
	if err != nil {
		t.Fatal(err)
	}
	dirs := out.Completed()
	if len(dirs) != 2 || dirs[0] != DirColumn || dirs[1] != DirMainDiagonal {
		t.Fatalf("Completed() = %v, expected [column diag-main]", dirs)
	}
	if out.Points != 2 {
		t.Errorf("Points = %d, expected 2", out.Points)
	}

	// Newly is reported once, in the first direction that scored the cell
	if len(out.Column.Newly) != 1 || len(out.MainDiagonal.Newly) != 0 {
		t.Errorf("Newly column=%v diag=%v", out.Column.Newly, out.MainDiagonal.Newly)
	}
	if len(out.MainDiagonal.Cells) != 1 {
		t.Errorf("completed diagonal should still report its cells: %v", out.MainDiagonal.Cells)
	}
	if scored := out.Scored(); len(scored) != 1 || scored[0] != At(2, 0) {
		t.Errorf("Scored() = %v", scored)
	}
}

func TestSingleCellBoardCompletesAllLines(t *testing.T) {
	b := mustBoard(t, 1)
	out, err := b.Play(At(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if out.Points != 4 || len(out.Completed()) != 4 {
		t.Errorf("Points = %d, completed = %v, expected all four lines", out.Points, out.Completed())
	}
	if !b.Terminal() {
		t.Error("width 1 board should be terminal after one move")
	}
}

func TestAlreadyScoredCellsCountButDoNotChange(t *testing.T) {
	b := mustBoard(t, 5)

	// Complete column 1 (cells (1,1) and (2,1))
	for _, c := range []Coord{At(1, 1), At(2, 1)} {
		if _, err := b.Play(c); err != nil {
			t.Fatal(err)
		}
	}
	if b.State(At(1, 1)) != Scored {
		t.Fatalf("column 1 should be scored, (1,1) is %v", b.State(At(1, 1)))
	}

	// (1,2) completes the anti-diagonal through (2,1), so it is scored too
	if _, err := b.Play(At(1, 2)); err != nil {
		t.Fatal(err)
	}
	if b.State(At(1, 2)) != Scored {
		t.Fatalf("(1,2) is %v, expected scored", b.State(At(1, 2)))
	}

	// Finishing row 1: the already scored cells still count
	out, err := b.Play(At(1, 3))
	if err != nil {
		t.Fatal(err)
	}
	if out.Row.Points() != 3 {
		t.Errorf("row points = %d, expected 3", out.Row.Points())
	}
	if len(out.Row.Newly) != 1 || out.Row.Newly[0] != At(1, 3) {
		t.Errorf("row Newly = %v, expected only [2, 4]", out.Row.Newly)
	}
	if len(out.Row.Cells) != 3 {
		t.Errorf("row Cells = %v, expected the whole row", out.Row.Cells)
	}
}

func TestResolveIgnoresOutsidePoint(t *testing.T) {
	b := mustBoard(t, 3)
	if out := b.Resolve(At(0, 0)); out.Combo() {
		t.Errorf("Resolve on padding returned %+v", out)
	}
}
