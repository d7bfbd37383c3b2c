package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/othello6/internal/entity"
)

// memoryStore keeps JSON snapshots keyed the same way as the redis repositories,
// so callers never share pointers with the store.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (that *memoryStore) save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	that.mu.Lock()
	defer that.mu.Unlock()
	that.data[key] = raw

	return nil
}

func (that *memoryStore) load(key string, value any) (bool, error) {
	that.mu.RLock()
	raw, ok := that.data[key]
	that.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return true, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	return true, nil
}

func (that *memoryStore) delete(key string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.data[key]; !ok {
		return false
	}
	delete(that.data, key)

	return true
}

type memoryGame struct {
	store *memoryStore
}

// NewMemoryGameRepository keeps games in process memory; state is lost on exit.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{store: newMemoryStore()}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	return that.store.save(gameKey(game.ID), game)
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	var game entity.Game

	found, err := that.store.load(gameKey(id), &game)
	if err != nil {
		return &entity.Game{}, err
	}

	if !found {
		return &entity.Game{}, ErrGameNotFound
	}

	return &game, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, id string) error {
	if !that.store.delete(gameKey(id)) {
		return ErrGameNotFound
	}

	return nil
}

type memoryPlayer struct {
	store *memoryStore
}

func NewMemoryPlayerRepository() PlayerRepository {
	return &memoryPlayer{store: newMemoryStore()}
}

func (that *memoryPlayer) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	return that.store.save(playerKey(player.ID), player)
}

func (that *memoryPlayer) GetByID(_ context.Context, id string) (*entity.Player, error) {
	var player entity.Player

	found, err := that.store.load(playerKey(id), &player)
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, ErrPlayerNotFound
	}

	return &player, nil
}
