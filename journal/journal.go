// Package journal persists the move list of the game in progress, so an
// interrupted session can be replayed onto a fresh board.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/daystram/chesscore/board"
)

const keyGame = "game"

// ErrCorrupt is returned when a stored game cannot be decoded or replayed.
var ErrCorrupt = errors.New("corrupt journal")

type record struct {
	Moves     []string  `json:"moves"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store wraps BadgerDB for the game journal.
type Store struct {
	db *badger.DB
}

// Open opens, or creates, the journal stored in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens a journal that is discarded on Close.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the stored game with mvs.
func (s *Store) Save(ctx context.Context, mvs []board.Move) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := record{
		Moves:     make([]string, 0, len(mvs)),
		UpdatedAt: time.Now(),
	}
	for _, mv := range mvs {
		rec.Moves = append(rec.Moves, mv.UCI())
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyGame), data)
	})
}

// Load returns the stored game, or no moves if nothing was saved.
func (s *Store) Load(ctx context.Context) ([]board.Move, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rec record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyGame))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &rec); err != nil {
				return fmt.Errorf("%w: %v", ErrCorrupt, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	mvs := make([]board.Move, 0, len(rec.Moves))
	for _, m := range rec.Moves {
		mv, err := board.ParseMove(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		mvs = append(mvs, mv)
	}
	return mvs, nil
}

// Clear removes the stored game.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyGame))
	})
}

// Replay rebuilds the game from the starting position. A move that cannot
// be played is reported as ErrCorrupt.
func Replay(mvs []board.Move) (*board.Board, []board.Move, error) {
	b, err := board.NewBoard()
	if err != nil {
		return nil, nil, err
	}
	played, err := b.ApplyMoves(mvs)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return b, played, nil
}
