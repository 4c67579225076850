package game

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Store holds the live game sessions, keyed by ID.
type Store struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*Game
	log   *slog.Logger
}

// NewStore creates an empty store. A nil logger uses slog.Default().
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		games: make(map[uuid.UUID]*Game),
		log:   logger.With("package", "game"),
	}
}

// Create starts a new game from pos and registers it.
func (s *Store) Create(pos chess.Position) *Game {
	g := New(pos)

	s.mu.Lock()
	s.games[g.ID] = g
	s.mu.Unlock()

	s.log.Debug("game created", "id", g.ID)
	return g
}

// Get returns the game with the given ID. Unknown and malformed IDs both
// yield ErrGameNotFound.
func (s *Store) Get(id string) (*Game, error) {
	key, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}

	s.mu.RLock()
	g, ok := s.games[key]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return g, nil
}

// Delete removes a game.
func (s *Store) Delete(id string) error {
	g, err := s.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.games, g.ID)
	s.mu.Unlock()

	s.log.Debug("game deleted", "id", g.ID)
	return nil
}

// Len returns the number of live games.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
