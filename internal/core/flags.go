package core

import "sync"

// Flags is the player progress that survives between runs.
type Flags struct {
	HasPlayed        bool
	AdditionUnlocked bool
}

// FlagStore persists Flags. Games write through it and storage backends
// implement it.
type FlagStore interface {
	LoadFlags() (Flags, error)
	SaveFlags(Flags) error
}

// MemoryFlags is a FlagStore kept in memory.
type MemoryFlags struct {
	mu    sync.Mutex
	flags Flags
}

// NewMemoryFlags creates an in-memory store holding initial.
func NewMemoryFlags(initial Flags) *MemoryFlags {
	return &MemoryFlags{flags: initial}
}

// LoadFlags returns the stored flags.
func (m *MemoryFlags) LoadFlags() (Flags, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flags, nil
}

// SaveFlags replaces the stored flags.
func (m *MemoryFlags) SaveFlags(f Flags) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags = f
	return nil
}

// AdditionUnlocked reports whether addition mode may be played.
// A store that cannot be read counts as locked.
func AdditionUnlocked(store FlagStore) bool {
	if store == nil {
		return false
	}
	f, err := store.LoadFlags()
	return err == nil && f.AdditionUnlocked
}
