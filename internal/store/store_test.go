package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Garsondee/Sputnik/internal/sim"
)

var (
	_ sim.BestScoreStore = (*MemStore)(nil)
	_ sim.BestScoreStore = (*FileStore)(nil)
)

func TestMemStore_ZeroValue(t *testing.T) {
	var m MemStore
	if _, ok := m.Get("x"); ok {
		t.Fatal("empty store reported a value")
	}
	if err := m.Set("x", 3); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok := m.Get("x"); !ok || v != 3 {
		t.Fatalf("Get = %d,%v", v, ok)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "best.msgpack"))
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, ok := s.Get(sim.BestScoreKey); ok {
		t.Fatal("missing file should hold no best score")
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "best.msgpack")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := s.Set(sim.BestScoreKey, 512); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok := reopened.Get(sim.BestScoreKey); !ok || v != 512 {
		t.Fatalf("reopened Get = %d,%v, want 512,true", v, ok)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind")
	}
}

func TestFileStore_CorruptFileFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.msgpack")
	if err := os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := OpenFile(path)
	if err == nil {
		t.Fatal("expected a decode error for a corrupt file")
	}
	if s == nil {
		t.Fatal("corrupt file should still yield a usable store")
	}
	if _, ok := s.Get(sim.BestScoreKey); ok {
		t.Fatal("corrupt file should hold no best score")
	}
	if err := s.Set(sim.BestScoreKey, 8); err != nil {
		t.Fatalf("Set after corrupt load: %v", err)
	}
	if reopened, err := OpenFile(path); err != nil {
		t.Fatalf("store not repaired by Set: %v", err)
	} else if v, _ := reopened.Get(sim.BestScoreKey); v != 8 {
		t.Fatalf("expected 8 after repair, got %d", v)
	}
}

func TestFileStore_FeedsScoreTracker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best.msgpack")
	s, _ := OpenFile(path)
	st := sim.NewScoreTracker(s)
	st.Credit(64)
	if _, err := st.EndGame(); err != nil {
		t.Fatalf("EndGame: %v", err)
	}

	reopened, _ := OpenFile(path)
	if sim.NewScoreTracker(reopened).Best() != 64 {
		t.Fatal("best score did not survive a restart")
	}
}
