package ir

import "fmt"

// Set is an unordered collection of hashable document values. Membership
// is decided by identity hash plus deep equality, so duplicates collapse
// even across numeric representations (1 and 1.0 are one element).
//
// A frozen Set rejects mutation and is itself hashable; a mutable Set is
// not, mirroring set/frozenset semantics at the storage boundary.
//
// Element order is insertion order. It is stable for a given Set, which
// is all the stage conversions rely on.
type Set struct {
	frozen bool
	elems  []any
	index  map[uint64][]int
}

// NewSet builds a mutable set from vals, collapsing duplicates. It fails
// with ErrUnhashable if any value has no identity hash.
func NewSet(vals ...any) (*Set, error) {
	return newSet(false, vals)
}

// NewFrozenSet builds a frozen set from vals, collapsing duplicates.
func NewFrozenSet(vals ...any) (*Set, error) {
	return newSet(true, vals)
}

func newSet(frozen bool, vals []any) (*Set, error) {
	s := &Set{frozen: frozen, index: make(map[uint64][]int, len(vals))}
	for _, v := range vals {
		if err := s.add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Set) add(v any) error {
	h, err := HashValue(v)
	if err != nil {
		return err
	}
	for _, i := range s.index[h] {
		if Equal(s.elems[i], v) {
			return nil
		}
	}
	s.index[h] = append(s.index[h], len(s.elems))
	s.elems = append(s.elems, v)
	return nil
}

// Add inserts v, returning ErrFrozen on a frozen set and ErrUnhashable
// if v has no identity hash. Inserting a present element is a no-op.
func (s *Set) Add(v any) error {
	if s.frozen {
		return ErrFrozen
	}
	return s.add(v)
}

// Contains reports membership of v. An unhashable v cannot be a member;
// the error lets callers distinguish that from plain absence.
func (s *Set) Contains(v any) (bool, error) {
	h, err := HashValue(v)
	if err != nil {
		return false, err
	}
	for _, i := range s.index[h] {
		if Equal(s.elems[i], v) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Set) Len() int {
	return len(s.elems)
}

func (s *Set) Frozen() bool {
	return s.frozen
}

// Values returns the elements in insertion order. The slice is a copy.
func (s *Set) Values() []any {
	out := make([]any, len(s.elems))
	copy(out, s.elems)
	return out
}

// Equal reports whether both sets hold the same elements. Frozen-ness is
// not part of equality, as with set and frozenset comparison.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.elems) != len(o.elems) {
		return false
	}
	for _, v := range s.elems {
		ok, err := o.Contains(v)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// IdentityHash combines element hashes commutatively, so element order
// does not matter. Only frozen sets are hashable.
func (s *Set) IdentityHash() (uint64, error) {
	if !s.frozen {
		return 0, fmt.Errorf("%w: mutable set", ErrUnhashable)
	}
	acc := hashKind(kindSet, nil)
	for _, v := range s.elems {
		h, err := HashValue(v)
		if err != nil {
			return 0, err
		}
		acc ^= mix(h)
	}
	return acc, nil
}

func (s *Set) String() string {
	if s.frozen {
		return fmt.Sprintf("frozenset%v", s.elems)
	}
	return fmt.Sprintf("set%v", s.elems)
}
