package storage

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/math-heroes/internal/core"
)

func TestFlagsDefaultFalse(t *testing.T) {
	store := openTestStore(t)

	f, err := store.LoadFlags()
	if err != nil {
		t.Fatalf("LoadFlags() failed: %v", err)
	}
	if f.HasPlayed || f.AdditionUnlocked {
		t.Errorf("fresh store flags = %+v, want all false", f)
	}
	if core.AdditionUnlocked(store) {
		t.Error("fresh store should keep addition locked")
	}
}

func TestFlagsRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flags.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	tests := []core.Flags{
		{HasPlayed: true},
		{HasPlayed: true, AdditionUnlocked: true},
		{},
	}
	for _, want := range tests {
		if err := store.SaveFlags(want); err != nil {
			t.Fatalf("SaveFlags(%+v) failed: %v", want, err)
		}
		got, err := store.LoadFlags()
		if err != nil {
			t.Fatalf("LoadFlags() failed: %v", err)
		}
		if got != want {
			t.Errorf("LoadFlags() = %+v, want %+v", got, want)
		}
	}

	// Survives reopen.
	if err := store.SaveFlags(core.Flags{HasPlayed: true, AdditionUnlocked: true}); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if !core.AdditionUnlocked(store) {
		t.Error("unlock lost across reopen")
	}
}

func TestResetFlags(t *testing.T) {
	store := openTestStore(t)
	store.SaveFlags(core.Flags{HasPlayed: true, AdditionUnlocked: true})

	if err := store.ResetFlags(); err != nil {
		t.Fatalf("ResetFlags() failed: %v", err)
	}
	f, _ := store.LoadFlags()
	if f != (core.Flags{}) {
		t.Errorf("flags after reset = %+v", f)
	}
}
