package jsontype

import (
	"reflect"
	"slices"
	"strings"
)

// Hashable returns a canonical representation of v in which equal
// JSON-shaped values have identical shapes regardless of map iteration order.
//
// Slices and arrays become []any with every element converted. String-keyed
// maps become an []any of []any{key, value} pairs sorted by key. Everything
// else, nil collections included, is returned unchanged. Hashable is
// idempotent.
//
//	jsontype.Hashable(map[string]any{"b": 1, "a": []any{map[string]any{"c": 2}}})
//	// → [[a [[[c 2]]]] [b 1]]
func Hashable(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		return hashableList(rv)
	case reflect.Array:
		return hashableList(rv)
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return v
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(x, y reflect.Value) int {
			return strings.Compare(x.String(), y.String())
		})
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = []any{k.String(), Hashable(rv.MapIndex(k).Interface())}
		}
		return out
	}
	return v
}

func hashableList(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = Hashable(rv.Index(i).Interface())
	}
	return out
}
