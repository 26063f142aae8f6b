// Package spawnlog appends a summary of each spawning session to a JSON
// Lines file under the user's data directory.
package spawnlog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Spawn is one tile placed during a session.
type Spawn struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

// Record summarizes one session.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	GridSize  int       `json:"grid_size"`
	Requested int       `json:"requested"`
	Spawned   []Spawn   `json:"spawned"`
	GridFull  bool      `json:"grid_full"`
}

// FileName is the log file inside Dir.
const FileName = "spawns.jsonl"

// Save appends rec to the default log file. Errors are logged but never
// returned so a disk problem cannot stop the command.
func Save(rec Record, logger *slog.Logger) {
	dir, err := Dir()
	if err != nil {
		logger.Warn("spawn log: cannot determine data dir", "error", err)
		return
	}
	if err := Append(filepath.Join(dir, FileName), rec); err != nil {
		logger.Warn("spawn log: write failed", "error", err)
		return
	}
	logger.Debug("spawn log written", "dir", dir, "tiles", len(rec.Spawned))
}

// Append writes rec as one JSON line at the end of path, creating the file
// and its parent directory as needed.
func Append(path string, rec Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}

// Dir returns the directory where spawn logs are stored:
// $XDG_DATA_HOME/game2048, defaulting to ~/.local/share/game2048.
func Dir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "game2048"), nil
}
