package spawnlog

import (
	"bufio"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirHonoursXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(tmp, "game2048"); dir != want {
		t.Errorf("Dir() = %q; want %q", dir, want)
	}
}

func TestDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", home)
	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".local", "share", "game2048"); dir != want {
		t.Errorf("Dir() = %q; want %q", dir, want)
	}
}

func TestAppendWritesOneLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	recs := []Record{
		{Timestamp: time.Unix(0, 0).UTC(), Seed: 1, GridSize: 4, Requested: 2, Spawned: []Spawn{{X: 1, Y: 2, Value: 0}, {X: 3, Y: 0, Value: 1}}},
		{Timestamp: time.Unix(60, 0).UTC(), Seed: 2, GridSize: 1, Requested: 3, Spawned: []Spawn{{}}, GridFull: true},
	}
	for _, r := range recs {
		if err := Append(path, r); err != nil {
			t.Fatal(err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var got []Record
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r Record
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("line %d: %v", len(got)+1, err)
		}
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("read %d records; want 2", len(got))
	}
	if len(got[0].Spawned) != 2 || got[0].Spawned[1] != (Spawn{X: 3, Y: 0, Value: 1}) {
		t.Errorf("first record spawned = %+v", got[0].Spawned)
	}
	if !got[1].GridFull || got[1].Seed != 2 {
		t.Errorf("second record = %+v", got[1])
	}
}

func TestSaveUsesDataDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	Save(Record{Seed: 5, GridSize: 4}, slog.Default())

	data, err := os.ReadFile(filepath.Join(tmp, "game2048", FileName))
	if err != nil {
		t.Fatal(err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatal(err)
	}
	if r.Seed != 5 {
		t.Errorf("Seed = %d; want 5", r.Seed)
	}
}
