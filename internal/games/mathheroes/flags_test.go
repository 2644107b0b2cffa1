package mathheroes

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/math-heroes/internal/storage"
)

func TestStartGamePersistsHasPlayed(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "heroes.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := New(ModeCounting, Options{Flags: store})
	g.Reset(testRuntime(1))

	f, err := store.LoadFlags()
	if err != nil {
		t.Fatalf("LoadFlags: %v", err)
	}
	if !f.HasPlayed {
		t.Error("starting a game should persist HasPlayed")
	}
	if f.AdditionUnlocked {
		t.Error("starting a game must not unlock addition")
	}
}
