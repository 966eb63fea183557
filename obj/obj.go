package obj

import (
	"cmp"
	"slices"
)

// Entry is a single key/value pair of a map, as produced by [Entries].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// ─────────────────────────────────────────────────────────────────────────────
// Mapping
// ─────────────────────────────────────────────────────────────────────────────

// MapValues returns a map with the same keys as m and every value replaced by
// fn(value). When a non-nil into map is supplied it is populated and returned
// instead of allocating a new one; existing keys in it that m does not have
// are left alone.
func MapValues[K comparable, V, U any](m map[K]V, fn func(V) U, into ...map[K]U) map[K]U {
	var out map[K]U
	if len(into) > 0 && into[0] != nil {
		out = into[0]
	} else {
		out = make(map[K]U, len(m))
	}
	for k, v := range m {
		out[k] = fn(v)
	}
	return out
}

// Entries returns the key/value pairs of m sorted by key.
func Entries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b Entry[K, V]) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// FromEntries builds a map from entries. When two entries share a key the
// later one wins.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	out := make(map[K]V, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// MapObject passes every entry of m (in key order) to fn together with its
// index and the full entry list, and builds a new map from the entries fn
// returns. fn may rename keys as well as transform values:
//
//	env := obj.MapObject(map[string]int{"foo": 5},
//	    func(e obj.Entry[string, int], _ int, _ []obj.Entry[string, int]) obj.Entry[string, string] {
//	        return obj.Entry[string, string]{Key: "process.env." + e.Key, Value: strconv.Itoa(e.Value)}
//	    })
//	// → {"process.env.foo": "5"}
func MapObject[K cmp.Ordered, V any, J comparable, U any](
	m map[K]V,
	fn func(entry Entry[K, V], index int, entries []Entry[K, V]) Entry[J, U],
) map[J]U {
	entries := Entries(m)
	mapped := make([]Entry[J, U], len(entries))
	for i, e := range entries {
		mapped[i] = fn(e, i, entries)
	}
	return FromEntries(mapped)
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new map holding only the listed keys that exist in m.
// Keys that m does not have are skipped.
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// PickWhere returns a new map holding the entries of m whose value satisfies
// keep.
func PickWhere[K comparable, V any](m map[K]V, keep func(V) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if keep(v) {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the listed keys.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// Has reports whether key is present in m, regardless of its value.
func Has[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}
