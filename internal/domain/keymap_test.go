package domain

import "testing"

func TestKeyMapPutAndLookup(t *testing.T) {
	m := NewKeyMap("customer")
	if err := m.Put("C001", 1); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := m.Put("C002", 2); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}

	id, ok := m.Lookup("C001")
	if !ok || id != 1 {
		t.Fatalf("Lookup(C001) = (%d, %v)", id, ok)
	}
	if _, ok := m.Lookup("C999"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestKeyMapFreezeRejectsPut(t *testing.T) {
	m := NewKeyMap("product")
	if err := m.Put("P001", 10); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	m.Freeze()
	if !m.Frozen() {
		t.Fatalf("expected map to report frozen")
	}

	if err := m.Put("P002", 20); err == nil {
		t.Fatalf("expected put on frozen map to fail")
	}

	// freezing twice is harmless
	m.Freeze()

	if id, ok := m.Lookup("P001"); !ok || id != 10 {
		t.Fatalf("frozen map must remain readable, got (%d, %v)", id, ok)
	}
}
