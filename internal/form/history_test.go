package form

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lootpick/internal/loot"
)

func TestRecordPickAppendsJSONLines(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	recordPick("sword", loot.ModeWeighted)
	recordPick("potion", loot.ModeUniform)

	dir, err := historyDir()
	if err != nil {
		t.Fatalf("historyDir: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "picks.jsonl"))
	if err != nil {
		t.Fatalf("read picks.jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var rec pickRecord
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("unmarshal line 0: %v", err)
	}
	if rec.Item != "sword" || rec.Mode != "Weighted" || rec.Time.IsZero() {
		t.Errorf("record = %+v", rec)
	}
}

func TestHistoryDirDefaultsToXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-test")
	dir, err := historyDir()
	if err != nil {
		t.Fatalf("historyDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", "lootpick") {
		t.Errorf("dir = %q", dir)
	}
}
