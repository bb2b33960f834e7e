// Package tablekit provides utilities working with dynamic tables.
//
// A Table is the dynamic container convention of this library:
// any comparable key mapped to any value, where contiguous positive
// integer keys starting at 1 form the array part of the table.
//
// The tablekit package is considered as a `lite` package,
// and therefore its dependencies strictly restricted.
package tablekit

// Table is the dynamic container type the toolkit operates on.
//
// It is a type alias on purpose: callers keep the literal map syntax,
// and any map[any]any value participates in the convention.
type Table = map[any]any

// AsTable reports whether a dynamic value follows the Table convention.
func AsTable(v any) (Table, bool) {
	t, ok := v.(Table)
	return t, ok
}

// Keys returns the keys of a table as an independent slice.
// The order of the returned keys is undefined, callers must not depend on it.
func Keys[K comparable, V any](m map[K]V, sort ...func([]K)) []K {
	if m == nil {
		return nil
	}
	var ks []K
	for k := range m {
		ks = append(ks, k)
	}
	for _, sort := range sort {
		sort(ks)
	}
	return ks
}

// Values returns the values of a table as an independent slice.
// The order of the returned values is undefined, callers must not depend on it.
func Values[K comparable, V any](m map[K]V, sort ...func([]V)) []V {
	if m == nil {
		return nil
	}
	var vs []V
	for _, v := range m {
		vs = append(vs, v)
	}
	for _, sort := range sort {
		sort(vs)
	}
	return vs
}

// Entry is an element of a table.
//
// A table is an unordered group of entries,
// where each entry consists of a key and a value.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Entries returns the key-value pairs of a table as an independent slice.
// The order of the returned entries is undefined, callers must not depend on it.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	if m == nil {
		return nil
	}
	if len(m) == 0 {
		return []Entry[K, V]{}
	}
	var entries []Entry[K, V]
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// Flip builds the value to key mapping of a table.
// When a value repeats, the last seen key wins per the iteration order used.
func Flip[K, V comparable](m map[K]V) map[V]K {
	if m == nil {
		return nil
	}
	var out = make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Set builds a membership set out of the values of a table.
func Set[K, V comparable](m map[K]V) map[V]bool {
	if m == nil {
		return nil
	}
	var out = make(map[V]bool, len(m))
	for _, v := range m {
		out[v] = true
	}
	return out
}

// SetOf builds a membership set out of a sequence of values.
func SetOf[T comparable](vs []T) map[T]bool {
	if vs == nil {
		return nil
	}
	var out = make(map[T]bool, len(vs))
	for _, v := range vs {
		out[v] = true
	}
	return out
}

// Identity builds an identity mapping of a sequence of values,
// where each value maps to itself.
// It is meant to be used as an uniqueness preserving index.
func Identity[T comparable](vs []T) map[T]T {
	if vs == nil {
		return nil
	}
	var out = make(map[T]T, len(vs))
	for _, v := range vs {
		out[v] = v
	}
	return out
}
