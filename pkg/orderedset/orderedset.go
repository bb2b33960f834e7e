// Package orderedset provides a set that maintains both the membership
// and the insertion position of its members.
package orderedset

import (
	"iter"
	"reflect"

	"go.llib.dev/frameless/pkg/errorkit"
)

// ErrInvalidMember is returned when a value can not be a member of an
// ordered set.
//
// Numbers are rejected because the table convention backing the set
// reserves the number namespace for positions,
// and a numeric member would be ambiguous with its own position.
// Callers needing numeric ordered sets must keep a separate
// dual-array representation.
const ErrInvalidMember errorkit.Error = "invalid ordered set member"

// Outcome tells what an Add or Delete call did to the set.
type Outcome int

const (
	// Added reports that the member was appended at the next position.
	Added Outcome = iota + 1
	// Existed reports that the member was already present, and nothing changed.
	Existed
	// Removed reports that the member was removed and the suffix renumbered.
	Removed
	// NotFound reports that the member was absent, and nothing changed.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Existed:
		return "existed"
	case Removed:
		return "removed"
	case NotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// OrderedSet keeps two synchronised representations of the same members:
// a dense positional sequence and a membership index with 1-based positions.
//
// For every member with position p, At(p) returns the member,
// and positions run contiguously from 1 to Len().
//
// The zero value is ready to use.
type OrderedSet struct {
	positions map[any]int
	members   []any
}

// FromSlice builds an ordered set from an initial ordered sequence.
// It fails with ErrInvalidMember when a value is numeric or repeats,
// since a repeated member would make its position ambiguous.
func FromSlice(vs []any) (*OrderedSet, error) {
	var set OrderedSet
	for _, v := range vs {
		outcome, err := set.Add(v)
		if err != nil {
			return nil, err
		}
		if outcome == Existed {
			return nil, ErrInvalidMember.F("duplicate member: %v", v)
		}
	}
	return &set, nil
}

// Add appends a member at position Len()+1.
// Adding an already present member is an idempotent no-op reported as Existed.
func (s *OrderedSet) Add(v any) (Outcome, error) {
	if err := checkMember(v); err != nil {
		return 0, err
	}
	if _, ok := s.positions[v]; ok {
		return Existed, nil
	}
	if s.positions == nil {
		s.positions = make(map[any]int)
	}
	s.members = append(s.members, v)
	s.positions[v] = len(s.members)
	return Added, nil
}

// Delete removes a member while preserving the insertion order of the rest.
//
// Every member after the removed position is renumbered,
// which makes removal cost proportional to the length of the suffix.
// A swap-with-last shortcut is not used on purpose:
// positional iteration order is part of the contract.
func (s *OrderedSet) Delete(v any) (Outcome, error) {
	if err := checkMember(v); err != nil {
		return 0, err
	}
	p, ok := s.positions[v]
	if !ok {
		return NotFound, nil
	}
	delete(s.positions, v)
	s.members = append(s.members[:p-1], s.members[p:]...)
	for i := p - 1; i < len(s.members); i++ {
		s.positions[s.members[i]] = i + 1
	}
	return Removed, nil
}

// Has reports membership.
func (s *OrderedSet) Has(v any) bool {
	_, ok := s.positions[v]
	return ok
}

// Position returns the 1-based position of a member.
func (s *OrderedSet) Position(v any) (int, bool) {
	p, ok := s.positions[v]
	return p, ok
}

// At returns the member at a 1-based position.
func (s *OrderedSet) At(p int) (any, bool) {
	if p < 1 || len(s.members) < p {
		return nil, false
	}
	return s.members[p-1], true
}

func (s *OrderedSet) Len() int { return len(s.members) }

// ToSlice returns the members in insertion order as an independent slice.
func (s *OrderedSet) ToSlice() []any {
	if s.members == nil {
		return nil
	}
	out := make([]any, len(s.members))
	copy(out, s.members)
	return out
}

// Iter yields the members in insertion order.
func (s *OrderedSet) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s.members {
			if !yield(v) {
				return
			}
		}
	}
}

func checkMember(v any) error {
	if v == nil {
		return ErrInvalidMember.F("nil member")
	}
	switch rt := reflect.TypeOf(v); rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return ErrInvalidMember.F("number member: %v", v)
	default:
		if !rt.Comparable() {
			return ErrInvalidMember.F("%T member is not comparable", v)
		}
	}
	return nil
}
