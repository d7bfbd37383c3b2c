package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/othello6/internal/apperror"
	"github.com/rocketscienceinc/othello6/internal/othello"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	maxPlayers = 2
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one session: the board, whose turn it is and how the game stands.
type Game struct {
	ID      string        `json:"id"`
	Board   othello.Board `json:"board"`
	Turn    othello.Cell  `json:"player_turn"`
	Winner  othello.Cell  `json:"winner"`
	Status  string        `json:"status"`
	Passes  int           `json:"passes"`
	Players []*Player     `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  othello.NewBoard(),
		Turn:   othello.Black,
		Status: StatusWaiting,
	}
}

// AddPlayer seats black first, then white. The game starts once both seats are taken.
func (that *Game) AddPlayer(player *Player) error {
	for _, seated := range that.Players {
		if seated.ID == player.ID {
			return nil
		}
	}

	if len(that.Players) >= maxPlayers {
		return fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, that.ID)
	}

	if len(that.Players) == 0 {
		player.Mark = othello.Black
	} else {
		player.Mark = othello.White
	}

	player.GameID = that.ID
	that.Players = append(that.Players, player)

	if len(that.Players) == maxPlayers {
		that.Status = StatusOngoing
		that.UpdateGameState()
	}

	return nil
}

// MakeTurn validates the move for the session and applies it to the board.
// It returns the flipped squares.
func (that *Game) MakeTurn(mark othello.Cell, row, col int) ([]othello.Position, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if that.Turn != mark {
		return nil, apperror.ErrNotYourTurn
	}

	if !that.Board.IsInBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d)", apperror.ErrInvalidCell, row, col)
	}

	if that.Board.At(row, col) != othello.Empty {
		return nil, apperror.ErrCellOccupied
	}

	flipped := that.Board.ApplyMove(mark, row, col)
	if len(flipped) == 0 {
		return nil, fmt.Errorf("%w: (%d,%d)", apperror.ErrIllegalMove, row, col)
	}

	that.Passes = 0
	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return flipped, nil
}

// PassTurn hands the turn to the opponent. Only a player without a valid move may pass.
func (that *Game) PassTurn(mark othello.Cell) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board.HasAnyValidMove(mark) {
		return apperror.ErrMustPlay
	}

	that.Passes++
	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

// UpdateGameState finishes the game once the board is terminal.
func (that *Game) UpdateGameState() {
	if !that.Board.IsGameOver() {
		return
	}

	that.Status = StatusFinished
	that.Winner = that.Board.Winner()
	that.Turn = othello.Empty
}

// MustPass reports whether the player to move is blocked while the game goes on.
func (that *Game) MustPass() bool {
	return that.IsOngoing() && !that.Board.HasAnyValidMove(that.Turn)
}

// CurrentPlayer returns the seat whose turn it is, or nil.
func (that *Game) CurrentPlayer() *Player {
	return that.PlayerByMark(that.Turn)
}

func (that *Game) PlayerByMark(mark othello.Cell) *Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == othello.Empty
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
