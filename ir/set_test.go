package ir

import (
	"errors"
	"testing"
)

func TestNewSetDeduplicates(t *testing.T) {
	s, err := NewSet(1, 2, int64(2), 2.0, 3, "3")
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4 (1, 2, 3, \"3\")", s.Len())
	}
	for _, v := range []any{1, 2.0, int64(3), "3"} {
		ok, err := s.Contains(v)
		if err != nil {
			t.Fatalf("Contains(%v) error = %v", v, err)
		}
		if !ok {
			t.Errorf("Contains(%v) = false, want true", v)
		}
	}
}

func TestSetUnhashableElement(t *testing.T) {
	tests := []struct {
		name string
		elem any
	}{
		{"sequence", []any{1}},
		{"plain mapping", map[string]any{"a": 1}},
		{"mutable set", mustSet(t, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSet(tt.elem); !errors.Is(err, ErrUnhashable) {
				t.Errorf("NewSet(%v) error = %v, want ErrUnhashable", tt.elem, err)
			}
		})
	}
}

func TestSetHashableElements(t *testing.T) {
	frozen := mustFrozenSet(t, "a", "b")
	s, err := NewSet(
		Path("/x/y"),
		HashMap{"_type": "Path", "_value": "/z", "_hash": int64(42)},
		frozen,
		nil,
	)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	ok, err := s.Contains(Path("/x/y"))
	if err != nil || !ok {
		t.Errorf("Contains(Path) = %v, %v, want true, nil", ok, err)
	}
	ok, err = s.Contains(mustFrozenSet(t, "b", "a"))
	if err != nil || !ok {
		t.Errorf("Contains(equal frozenset) = %v, %v, want true, nil", ok, err)
	}
}

func TestFrozenSetAdd(t *testing.T) {
	s := mustFrozenSet(t, 1)
	if err := s.Add(2); !errors.Is(err, ErrFrozen) {
		t.Errorf("Add() on frozen set error = %v, want ErrFrozen", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after rejected Add, want 1", s.Len())
	}
}

func TestSetAdd(t *testing.T) {
	s := mustSet(t)
	if err := s.Add(1); err != nil {
		t.Fatalf("Add(1) error = %v", err)
	}
	if err := s.Add(1.0); err != nil {
		t.Fatalf("Add(1.0) error = %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if err := s.Add([]any{}); !errors.Is(err, ErrUnhashable) {
		t.Errorf("Add(sequence) error = %v, want ErrUnhashable", err)
	}
}

func TestFrozenSetHashOrderIndependent(t *testing.T) {
	a := mustFrozenSet(t, 1, "two", Path("/three"))
	b := mustFrozenSet(t, Path("/three"), 1, "two")
	ha, err := a.IdentityHash()
	if err != nil {
		t.Fatalf("IdentityHash() error = %v", err)
	}
	hb, err := b.IdentityHash()
	if err != nil {
		t.Fatalf("IdentityHash() error = %v", err)
	}
	if ha != hb {
		t.Errorf("IdentityHash() differs across insertion orders: %d != %d", ha, hb)
	}
}

func TestMutableSetHash(t *testing.T) {
	s := mustSet(t, 1)
	if _, err := s.IdentityHash(); !errors.Is(err, ErrUnhashable) {
		t.Errorf("IdentityHash() on mutable set error = %v, want ErrUnhashable", err)
	}
}

func TestSetEqualIgnoresFrozen(t *testing.T) {
	if !mustSet(t, 1, 2).Equal(mustFrozenSet(t, 2, 1)) {
		t.Error("set{1,2} should equal frozenset{2,1}")
	}
	if mustSet(t, 1).Equal(mustSet(t, 1, 2)) {
		t.Error("sets of different cardinality should not be equal")
	}
}

func mustSet(t *testing.T, vals ...any) *Set {
	t.Helper()
	s, err := NewSet(vals...)
	if err != nil {
		t.Fatalf("NewSet(%v) error = %v", vals, err)
	}
	return s
}

func mustFrozenSet(t *testing.T, vals ...any) *Set {
	t.Helper()
	s, err := NewFrozenSet(vals...)
	if err != nil {
		t.Fatalf("NewFrozenSet(%v) error = %v", vals, err)
	}
	return s
}
