package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Outcome classifies a finished game. The rules engine only reports
// "no legal moves"; the UI layer labels the result before recording it.
type Outcome int

const (
	OutcomeWhiteWins Outcome = iota
	OutcomeBlackWins
	OutcomeStalemate
)

// Preferences stores user settings.
type Preferences struct {
	BoardFlipped bool      `json:"board_flipped"`
	ShowMoveDots bool      `json:"show_move_dots"`
	Theme        string    `json:"theme"`
	LastPlayed   time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		BoardFlipped: false,
		ShowMoveDots: true,
		Theme:        "default",
		LastPlayed:   time.Now(),
	}
}

// Stats stores lifetime game statistics. Individual game histories are
// deliberately not persisted.
type Stats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Stalemates  int `json:"stalemates"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// New opens the database in the platform data directory.
func New() (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the database in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()
	return s.setJSON(keyPreferences, prefs)
}

// LoadPreferences loads user preferences, returning defaults if none
// are stored yet.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.getJSON(keyPreferences, prefs)
	return prefs, err
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *Stats) error {
	return s.setJSON(keyStats, stats)
}

// LoadStats loads game statistics, returning zeroes if none are stored.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}
	err := s.getJSON(keyStats, stats)
	return stats, err
}

// RecordGame records a finished game and updates statistics.
func (s *Storage) RecordGame(outcome Outcome) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	switch outcome {
	case OutcomeWhiteWins:
		stats.WhiteWins++
	case OutcomeBlackWins:
		stats.BlackWins++
	case OutcomeStalemate:
		stats.Stalemates++
	}

	return s.SaveStats(stats)
}

func (s *Storage) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (s *Storage) getJSON(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil // Use the caller's defaults
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}
