package domain

import "fmt"

// KeyMap maps upstream source keys to store-generated identifiers. One
// instance exists per entity type per run. It is built during the load stage
// for that entity and must be frozen before the sales stage consumes it;
// after Freeze the map is read-only.
type KeyMap struct {
	name   string
	ids    map[string]int64
	frozen bool
}

// NewKeyMap creates an empty, unfrozen key map. The name only appears in
// error messages.
func NewKeyMap(name string) *KeyMap {
	return &KeyMap{
		name: name,
		ids:  make(map[string]int64),
	}
}

// Put records a source key to persisted id mapping. Calling Put after Freeze
// is a programming error.
func (m *KeyMap) Put(sourceKey string, persistedID int64) error {
	if m.frozen {
		return fmt.Errorf("%s key map is frozen", m.name)
	}
	m.ids[sourceKey] = persistedID
	return nil
}

// Freeze marks the map read-only. Freezing twice is harmless.
func (m *KeyMap) Freeze() {
	m.frozen = true
}

// Frozen reports whether the map has been frozen.
func (m *KeyMap) Frozen() bool {
	return m.frozen
}

// Lookup returns the persisted id for a source key.
func (m *KeyMap) Lookup(sourceKey string) (int64, bool) {
	id, ok := m.ids[sourceKey]
	return id, ok
}

// Len returns the number of mapped source keys.
func (m *KeyMap) Len() int {
	return len(m.ids)
}
