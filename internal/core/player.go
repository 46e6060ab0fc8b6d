package core

// PlayerID identifies one of the two seats at the board.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// Opponent returns the other seat.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Index returns the seat as an array index (0 or 1).
func (p PlayerID) Index() int {
	return int(p)
}

// Valid reports whether p is one of the two seats.
func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// String returns a human-readable name for the seat.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return "Unknown"
	}
}
