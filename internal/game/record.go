package game

import "github.com/JPatryk13/triangle-game/internal/storage"

// Recorder persists finished matches. *storage.Store implements it.
type Recorder interface {
	SaveMatch(m storage.MatchRecord) (int64, error)
}

// Record converts a finished match into its stored form.
func Record(mode Mode, width int, res Result) storage.MatchRecord {
	return storage.MatchRecord{
		Mode:     string(mode),
		Width:    width,
		Player1:  res.Names[0],
		Player2:  res.Names[1],
		Score1:   res.Scores[0],
		Score2:   res.Scores[1],
		Winner:   res.WinnerName(),
		Moves:    res.Moves,
		Duration: res.Duration,
	}
}
