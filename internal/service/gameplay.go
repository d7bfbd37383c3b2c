package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/othello6/internal/entity"
)

var ErrPlayerNotInGame = errors.New("player is not in a game")

type GamePlayService interface {
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error)
	PassTurn(ctx context.Context, playerID string) (*entity.Game, error)

	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger zerolog.Logger

	playerService PlayerService
	gameService   GameService
}

func NewGamePlayService(logger zerolog.Logger, playerService PlayerService, gameService GameService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
	}
}

func (that *gamePlayService) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if err = game.AddPlayer(player); err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	log := that.logger.With().Str("method", "MakeTurn").Str("player", playerID).Logger()

	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	flipped, err := game.MakeTurn(player.Mark, row, col)
	if err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug().
		Str("game", game.ID).
		Int("row", row).
		Int("col", col).
		Int("flipped", len(flipped)).
		Msg("turn applied")

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) PassTurn(ctx context.Context, playerID string) (*entity.Game, error) {
	log := that.logger.With().Str("method", "PassTurn").Str("player", playerID).Logger()

	player, game, err := that.playerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.PassTurn(player.Mark); err != nil {
		return game, fmt.Errorf("failed to pass turn: %w", err)
	}

	log.Debug().Str("game", game.ID).Int("passes", game.Passes).Msg("turn passed")

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) playerGame(ctx context.Context, playerID string) (*entity.Player, *entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, nil, fmt.Errorf("%w: player id %s", ErrPlayerNotInGame, playerID)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return player, game, nil
}

// CleanupGame drops the game from storage and frees its seats. Failures are only logged.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With().Str("method", "CleanupGame").Str("game", game.ID).Logger()

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error().Err(err).Msg("failed to delete game")
	}

	for _, player := range game.Players {
		released := *player
		released.GameID = ""
		released.Mark = 0
		if err := that.playerService.UpdatePlayer(ctx, &released); err != nil {
			log.Error().Err(err).Str("player", player.ID).Msg("failed to update")
		}
	}
}
