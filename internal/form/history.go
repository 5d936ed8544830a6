package form

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"lootpick/internal/loot"
)

// pickRecord is one line of picks.jsonl.
type pickRecord struct {
	Item string    `json:"item"`
	Mode string    `json:"mode"`
	Time time.Time `json:"time"`
}

// recordPick appends a successful pick as a single JSON line to picks.jsonl.
// Errors are silently discarded so a disk problem never breaks the form.
func recordPick(item string, mode loot.Mode) {
	dir, err := historyDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "picks.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(pickRecord{Item: item, Mode: mode.String(), Time: time.Now().UTC()})
	if err != nil {
		return
	}
	f.Write(data)         //nolint:errcheck — best-effort write
	f.Write([]byte("\n")) //nolint:errcheck
}

// historyDir returns the directory where pick history is stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/lootpick, defaulting to
// ~/.local/share/lootpick.
func historyDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lootpick"), nil
}
