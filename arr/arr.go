package arr

import (
	"fmt"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Selecting & restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Choose returns items[i] for each index i, in the order the indices are
// given. Indices outside [0, len(items)) yield the zero value.
//
//	Choose([]any{7, 3, 9, []any{0}, 1}, 0, 3) // → [7 [0]]
func Choose[T any](items []T, indices ...int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		if idx >= 0 && idx < len(items) {
			out[i] = items[idx]
		}
	}
	return out
}

// Flatten removes exactly one level of nesting: elements that are themselves
// []any are spliced into the result, everything else is appended as-is.
//
//	Flatten([]any{1, []any{2, []any{3, 4}}, 5}) // → [1 2 [3 4] 5]
func Flatten(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		if nested, ok := item.([]any); ok {
			out = append(out, nested...)
			continue
		}
		out = append(out, item)
	}
	return out
}

// Zip transposes the input slices into tuples. The result has as many tuples
// as the longest input; each tuple has one slot per input, and slots past the
// end of a shorter input hold the zero value.
//
//	Zip([]any{1, 2}, []any{"a", "b"}, []any{true, false, nil})
//	// → [[1 a true] [2 b false] [<nil> <nil> <nil>]]
func Zip[T any](arrays ...[]T) [][]T {
	longest := 0
	for _, a := range arrays {
		longest = max(longest, len(a))
	}
	out := make([][]T, longest)
	for i := range out {
		tuple := make([]T, len(arrays))
		for j, a := range arrays {
			if i < len(a) {
				tuple[j] = a[i]
			}
		}
		out[i] = tuple
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns the distinct elements of items in first-occurrence order.
func Uniq[T comparable](items []T) []T {
	seen := make(map[any]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := keyOf(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Union concatenates arrays and removes duplicates, keeping the first
// occurrence of each value.
func Union[T comparable](arrays ...[]T) []T {
	return Uniq(concat(arrays))
}

// Intersection returns the distinct elements of first that are present in
// every one of others. With no others it is equivalent to Uniq(first).
func Intersection[T comparable](first []T, others ...[]T) []T {
	sets := make([]map[any]struct{}, len(others))
	for i, other := range others {
		sets[i] = toSet(other)
	}
	out := make([]T, 0)
	for _, item := range Uniq(first) {
		inAll := true
		for _, set := range sets {
			if _, ok := set[keyOf(item)]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, item)
		}
	}
	return out
}

// Difference returns the elements of first that appear in none of others.
// Duplicates within first are preserved.
func Difference[T comparable](first []T, others ...[]T) []T {
	exclude := toSet(concat(others))
	out := make([]T, 0, len(first))
	for _, item := range first {
		if _, found := exclude[keyOf(item)]; !found {
			out = append(out, item)
		}
	}
	return out
}

func concat[T any](arrays [][]T) []T {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}
	out := make([]T, 0, total)
	for _, a := range arrays {
		out = append(out, a...)
	}
	return out
}

func toSet[T comparable](items []T) map[any]struct{} {
	set := make(map[any]struct{}, len(items))
	for _, item := range items {
		set[keyOf(item)] = struct{}{}
	}
	return set
}

// refKey identifies a map, slice or func by its type and address.
type refKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// shapeKey stands in for an array or struct value that holds a reference
// type somewhere inside and so cannot be hashed directly.
type shapeKey struct {
	typ  reflect.Type
	repr string
}

// keyOf returns a hashable stand-in for v. Comparable values are their own
// key; maps, slices and funcs compare by identity.
func keyOf[T comparable](v T) any {
	a := any(v)
	if a == nil {
		return nil
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Map, reflect.Func:
		return refKey{typ: rv.Type(), ptr: rv.Pointer()}
	case reflect.Slice:
		return refKey{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
	}
	if rv.Comparable() {
		return a
	}
	return shapeKey{typ: rv.Type(), repr: fmt.Sprintf("%#v", a)}
}
