package console

import (
	"fmt"
	"io"

	"github.com/JPatryk13/triangle-game/internal/board"
)

const rulesIntro = `The game is similar to tic-tac-toe. You choose a field
from the board and you check if you hit a combo. In this
specific case you are presented with a triangular board.
E.g. an 11-fields-base triangle:`

const rulesMoves = `Then you choose a pair of coordinates pointing at a field
that hasn't been filled up yet, for example: '3 4'.
Separate the two numbers by a space. The first one is the
number of the row (1-%d), the second one is the number of
the column (1-%d). After your choice the field is filled up
(shown as 0) and it is the other player's turn.
If your move fills up the last open field of its row, its
column or one of its two diagonals, the whole line is
crossed off (shown as X) and you gain one point for every
field of that line. Lines crossed off together all count,
so a double combo scores both lines.
The game ends when all fields are filled up; the winner
is the player with the highest score.
`

// RenderRules writes the rules with an example board.
func RenderRules(w io.Writer) {
	const width = 11
	b, err := board.New(width)
	if err != nil {
		panic(err)
	}
	fmt.Fprintln(w, rulesIntro)
	RenderBoard(w, b)
	fmt.Fprintf(w, rulesMoves, b.Height(), b.Width())
}
