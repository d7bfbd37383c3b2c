package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/othello6/internal/config"
	"github.com/rocketscienceinc/othello6/internal/entity"
	"github.com/rocketscienceinc/othello6/internal/repository"
	"github.com/rocketscienceinc/othello6/internal/repository/storage"
	"github.com/rocketscienceinc/othello6/internal/service"
	"github.com/rocketscienceinc/othello6/internal/transport/console"
	"github.com/rocketscienceinc/othello6/internal/usecase"
)

var (
	ErrAddrNotFound   = errors.New("redis address string is empty")
	ErrUnknownStorage = errors.New("unknown storage")
)

// Options select the game to play and the streams the console talks to.
type Options struct {
	ResumeID string
	In       io.Reader
	Out      io.Writer
}

// RunApp - runs one console game to completion or until interrupted.
func RunApp(logger zerolog.Logger, conf *config.Config, opts Options) error {
	log := logger.With().Str("component", "app").Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo, playerRepo, closeStorage, err := openStorage(ctx, conf)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error().Err(closeErr).Msg("could not close storage")
		}
	}()

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService)
	gameUseCase := usecase.NewGameUseCase(logger, playerService, gameService, gamePlayService)

	game, err := loadGame(ctx, gameUseCase, conf, opts.ResumeID)
	if err != nil {
		return err
	}

	cli := console.New(logger, gameUseCase, opts.In, opts.Out, conf.Console.HideHints)
	cli.Welcome(game)

	// the console blocks on input, so it runs aside and a signal can still end the app
	playErrCh := make(chan error, 1)
	go func() {
		_, playErr := cli.Play(ctx, game)
		playErrCh <- playErr
	}()

	select {
	case err = <-playErrCh:
		if errors.Is(err, console.ErrInputClosed) {
			log.Info().Str("game", game.ID).Str("storage", conf.Storage).Msg("Input closed, game left unfinished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("console error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info().Str("game", game.ID).Msg("Application context canceled, shutting down")
		return nil
	}
}

func openStorage(ctx context.Context, conf *config.Config) (repository.GameRepository, repository.PlayerRepository, func() error, error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemoryGameRepository(), repository.NewMemoryPlayerRepository(), func() error { return nil }, nil
	case config.StorageRedis:
		if conf.Redis.Host == "" {
			return nil, nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		gameRepo := repository.NewGameRepository(redisStorage, conf.Redis.GameTTL)
		playerRepo := repository.NewPlayerRepository(redisStorage, conf.Redis.GameTTL)

		return gameRepo, playerRepo, redisStorage.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}

func loadGame(ctx context.Context, gameUseCase usecase.GameUseCase, conf *config.Config, resumeID string) (*entity.Game, error) {
	if resumeID != "" {
		game, err := gameUseCase.ResumeGame(ctx, resumeID)
		if err != nil {
			return nil, fmt.Errorf("could not resume game: %w", err)
		}

		return game, nil
	}

	game, err := gameUseCase.StartGame(ctx, conf.Console.BlackName, conf.Console.WhiteName)
	if err != nil {
		return nil, fmt.Errorf("could not start game: %w", err)
	}

	return game, nil
}
