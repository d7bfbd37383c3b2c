package entity

import "github.com/rocketscienceinc/othello6/internal/othello"

// Player is a seat at the board.
type Player struct {
	ID     string       `json:"id"`
	Name   string       `json:"name,omitempty"`
	Mark   othello.Cell `json:"mark,omitempty"`
	GameID string       `json:"game_id,omitempty"`
}

// DisplayName falls back to the colour when the seat has no name.
func (that *Player) DisplayName() string {
	if that.Name != "" {
		return that.Name
	}

	return ColorName(that.Mark)
}

func ColorName(mark othello.Cell) string {
	switch mark {
	case othello.Black:
		return "Black"
	case othello.White:
		return "White"
	default:
		return "Nobody"
	}
}
