package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/othello6/internal/apperror"
	"github.com/rocketscienceinc/othello6/internal/entity"
	"github.com/rocketscienceinc/othello6/internal/othello"
)

var (
	ErrInputClosed = errors.New("input closed before the game ended")
	ErrNoSeat      = errors.New("no player holds the current turn")

	errMalformedInput = errors.New("malformed input")
)

type gameUseCase interface {
	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	PassTurn(ctx context.Context, playerID string) (*entity.Game, error)
}

// Console drives a hot-seat game over a line-oriented reader and writer.
type Console struct {
	logger  zerolog.Logger
	useCase gameUseCase

	in        *bufio.Scanner
	out       io.Writer
	hideHints bool
}

func New(logger zerolog.Logger, useCase gameUseCase, in io.Reader, out io.Writer, hideHints bool) *Console {
	return &Console{
		logger:    logger,
		useCase:   useCase,
		in:        bufio.NewScanner(in),
		out:       out,
		hideHints: hideHints,
	}
}

// Welcome prints the banner shown before the first board.
func (that *Console) Welcome(game *entity.Game) {
	fmt.Fprintln(that.out, "Welcome to 6x6 Othello (Reversi) - Console Version")
	fmt.Fprintf(that.out, "Game ID: %s\n", game.ID)
	fmt.Fprintln(that.out, "Enter moves as: row col  (example: 2 3)")
	fmt.Fprintln(that.out)
}

// Play runs turns until the game is over and returns the final game.
// Game over is checked after every turn, passes included.
func (that *Console) Play(ctx context.Context, game *entity.Game) (*entity.Game, error) {
	log := that.logger.With().Str("method", "Play").Str("game", game.ID).Logger()

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game, err
		}

		renderBoard(that.out, &game.Board)

		player := game.CurrentPlayer()
		if player == nil {
			return game, fmt.Errorf("%w: %s", ErrNoSeat, game.Turn)
		}

		if game.MustPass() {
			fmt.Fprintf(that.out, "%s has no valid moves. Turn passed.\n", playerLabel(game, player.Mark))

			next, err := that.useCase.PassTurn(ctx, player.ID)
			if err != nil {
				return game, fmt.Errorf("failed to pass turn: %w", err)
			}
			game = next

			continue
		}

		fmt.Fprintf(that.out, "Current player: %s\n", playerLabel(game, player.Mark))
		if !that.hideHints {
			renderMoves(that.out, game.Board.ValidMoves(player.Mark))
		}
		fmt.Fprint(that.out, "Enter move (row col): ")

		row, col, err := that.readMove()
		if errors.Is(err, errMalformedInput) {
			fmt.Fprintln(that.out, "Invalid input. Enter two integers like: 2 3")
			continue
		}
		if err != nil {
			return game, err
		}

		next, err := that.useCase.MakeTurn(ctx, player.ID, row, col)
		switch {
		case errors.Is(err, apperror.ErrInvalidCell):
			fmt.Fprintf(that.out, "Out of bounds. Use 0 to %d\n", othello.Size-1)
			continue
		case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrIllegalMove):
			fmt.Fprintln(that.out, "Invalid move. That position doesn't flip any opponent pieces.")
			continue
		case err != nil:
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug().Int("row", row).Int("col", col).Msg("move accepted")
		game = next
	}

	renderBoard(that.out, &game.Board)
	renderResult(that.out, game)

	return game, nil
}

// readMove reads one line and parses the first two fields as row and column.
func (that *Console) readMove() (int, int, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return 0, 0, fmt.Errorf("failed to read move: %w", err)
		}

		fmt.Fprintln(that.out)
		return 0, 0, ErrInputClosed
	}

	fields := strings.Fields(that.in.Text())
	if len(fields) < 2 {
		return 0, 0, errMalformedInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errMalformedInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errMalformedInput
	}

	return row, col, nil
}
