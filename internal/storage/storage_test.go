package storage

import (
	"os"
	"testing"
)

func TestStorage(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	defer s.Close()

	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if prefs.BoardFlipped {
			t.Errorf("Expected board not flipped by default")
		}
		if !prefs.ShowMoveDots {
			t.Errorf("Expected move dots enabled by default")
		}
		if prefs.Theme != "default" {
			t.Errorf("Expected default theme, got '%s'", prefs.Theme)
		}
	})

	t.Run("PreferencesRoundTrip", func(t *testing.T) {
		prefs, _ := s.LoadPreferences()
		prefs.BoardFlipped = true
		prefs.Theme = "forest"
		if err := s.SavePreferences(prefs); err != nil {
			t.Fatalf("SavePreferences failed: %v", err)
		}

		loaded, err := s.LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences failed: %v", err)
		}
		if !loaded.BoardFlipped || loaded.Theme != "forest" {
			t.Errorf("Saved preferences not read back: %+v", loaded)
		}
	})

	t.Run("RecordGame", func(t *testing.T) {
		if err := s.RecordGame(OutcomeWhiteWins); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}
		if err := s.RecordGame(OutcomeStalemate); err != nil {
			t.Fatalf("RecordGame failed: %v", err)
		}

		stats, err := s.LoadStats()
		if err != nil {
			t.Fatalf("LoadStats failed: %v", err)
		}
		if stats.GamesPlayed != 2 || stats.WhiteWins != 1 || stats.Stalemates != 1 {
			t.Errorf("Unexpected stats: %+v", stats)
		}
	})
}

func TestDataPaths(t *testing.T) {
	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("DataDir returned empty path")
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}
}
