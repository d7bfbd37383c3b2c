package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/othello6/internal/entity"
	"github.com/rocketscienceinc/othello6/internal/othello"
)

func TestMemoryGameRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns a copy of the game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		// Given: a stored game
		game := entity.NewGame("123")
		require.NoError(t, game.AddPlayer(&entity.Player{ID: "p1"}))
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		// When: the caller keeps mutating its own value
		game.Board[0][0] = othello.White

		// Then: the stored snapshot is unaffected
		retrievedGame, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, othello.Empty, retrievedGame.Board[0][0])
		assert.Equal(t, othello.NewBoard(), retrievedGame.Board)
		require.Len(t, retrievedGame.Players, 1)
		assert.Equal(t, othello.Black, retrievedGame.Players[0].Mark)
	})

	t.Run("Update overwrites the previous snapshot", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		game := entity.NewGame("123")
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		game.Status = entity.StatusFinished
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, game))

		retrievedGame, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.True(t, retrievedGame.IsFinished())
	})

	t.Run("Missing game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		retrievedGame, err := gameRepo.GetByID(ctx, "nope")
		require.ErrorIs(t, err, ErrGameNotFound)
		assert.Empty(t, retrievedGame.ID)

		require.ErrorIs(t, gameRepo.DeleteByID(ctx, "nope"), ErrGameNotFound)
	})

	t.Run("Delete removes the game", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()
		require.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))

		require.NoError(t, gameRepo.DeleteByID(ctx, "123"))

		_, err := gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, ErrGameNotFound)
	})

	t.Run("Concurrent access is safe", func(t *testing.T) {
		gameRepo := NewMemoryGameRepository()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, gameRepo.CreateOrUpdate(ctx, entity.NewGame("123")))
				_, _ = gameRepo.GetByID(ctx, "123")
			}()
		}
		wg.Wait()

		_, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
	})
}

func TestMemoryPlayerRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores and returns the player", func(t *testing.T) {
		playerRepo := NewMemoryPlayerRepository()

		player := &entity.Player{ID: "p1", Name: "Alice", Mark: othello.Black, GameID: "123"}
		require.NoError(t, playerRepo.CreateOrUpdate(ctx, player))

		retrievedPlayer, err := playerRepo.GetByID(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, player, retrievedPlayer)
		assert.NotSame(t, player, retrievedPlayer)
	})

	t.Run("Missing player", func(t *testing.T) {
		playerRepo := NewMemoryPlayerRepository()

		retrievedPlayer, err := playerRepo.GetByID(ctx, "nope")

		require.ErrorIs(t, err, ErrPlayerNotFound)
		assert.Nil(t, retrievedPlayer)
	})
}
