package obj

import (
	"reflect"
	"strconv"
)

// Get walks path through nested objects and arrays starting at v and returns
// the value found there.
//
// Objects are maps with string keys; arrays are slices or arrays indexed by
// the decimal form of the path segment. def is returned when a segment is
// missing, or when an intermediate value (v included) is nil or not a
// container. A key that is present with a nil value yields nil, not
// def. An empty path returns v.
//
//	m := map[string]any{"user": map[string]any{"tags": []any{"a", "b"}}}
//	obj.Get(m, []string{"user", "tags", "1"}, nil)   // → "b"
//	obj.Get(m, []string{"user", "name"}, "anon")     // → "anon"
func Get(v any, path []string, def any) any {
	if len(path) == 0 {
		return v
	}
	cur := v
	for _, seg := range path {
		next, ok := child(cur, seg)
		if !ok {
			return def
		}
		cur = next
	}
	return cur
}

func child(v any, key string) (any, bool) {
	switch c := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case []any:
		i, ok := index(key, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String || rv.IsNil() {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(key, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	default:
		return nil, false
	}
}

func index(key string, n int) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}
