package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/othello6/internal/entity"
)

type GameUseCase interface {
	StartGame(ctx context.Context, blackName, whiteName string) (*entity.Game, error)
	ResumeGame(ctx context.Context, gameID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	PassTurn(ctx context.Context, playerID string) (*entity.Game, error)
}

type playerService interface {
	CreatePlayer(ctx context.Context, name string) (*entity.Player, error)
}

type gameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gamePlayService interface {
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	PassTurn(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gameUseCase struct {
	logger zerolog.Logger

	playerService   playerService
	gameService     gameService
	gamePlayService gamePlayService
}

func NewGameUseCase(logger zerolog.Logger, playerService playerService, gameService gameService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		logger:          logger,
		playerService:   playerService,
		gameService:     gameService,
		gamePlayService: gamePlayService,
	}
}

// StartGame creates a game and seats two local players, black first.
func (that *gameUseCase) StartGame(ctx context.Context, blackName, whiteName string) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	for _, name := range []string{blackName, whiteName} {
		player, err := that.playerService.CreatePlayer(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		game, err = that.gamePlayService.JoinGame(ctx, game.ID, player.ID)
		if err != nil {
			return nil, fmt.Errorf("could not join game: %w", err)
		}
	}

	that.logger.Info().Str("game", game.ID).Msg("game started")

	return game, nil
}

// ResumeGame loads an unfinished game from storage.
func (that *gameUseCase) ResumeGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, fmt.Errorf("game %s cannot be resumed: %w", gameID, err)
	}

	that.logger.Info().Str("game", game.ID).Msg("game resumed")

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, playerID, row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	that.finish(ctx, game)

	return game, nil
}

func (that *gameUseCase) PassTurn(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.PassTurn(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to pass turn: %w", err)
	}

	that.finish(ctx, game)

	return game, nil
}

// finish removes a finished game from storage; the caller keeps the final value.
func (that *gameUseCase) finish(ctx context.Context, game *entity.Game) {
	if !game.IsFinished() {
		return
	}

	black, white := game.Board.Score()
	that.logger.Info().
		Str("game", game.ID).
		Str("winner", entity.ColorName(game.Winner)).
		Int("black", black).
		Int("white", white).
		Msg("game finished")

	that.gamePlayService.CleanupGame(ctx, game)
}
