package obj

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-json-experiment/json"
)

// Merge recursively merges source into target, mutating target and returning
// it. A nil target is replaced by a fresh map, which is returned.
//
// Objects (maps with string keys) and arrays (slices and arrays of any element
// type) are mergeable. For every key of source:
//   - if the source value is an object or array and the target value is a
//     map[string]any, the source's keys, or its indices written as "0",
//     "1", ..., are merged into it recursively;
//   - if both are arrays and the target is an []any, they are merged index by
//     index, and a longer source array extends the target array;
//   - otherwise the target key is overwritten: mergeable values with a deep
//     copy that keeps their Go type, everything else (scalars, nil, structs,
//     pointers, time.Time, *regexp.Regexp, ...) with the source value itself.
//
// Keys of target that source does not mention are left untouched. Source
// values must be acyclic.
func Merge(target, source map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any, len(source))
	}
	for k, src := range source {
		target[k] = mergeValue(target[k], src)
	}
	return target
}

func mergeValue(dst, src any) any {
	sv := reflect.ValueOf(src)
	if !mergeable(sv) {
		return src
	}
	switch d := dst.(type) {
	case map[string]any:
		if d != nil {
			mergeInto(d, sv)
			return d
		}
	case []any:
		if d != nil && isList(sv) {
			return mergeSlice(d, sv)
		}
	}
	return deepCopy(sv).Interface()
}

// mergeInto merges the entries of the object or array sv into dst.
func mergeInto(dst map[string]any, sv reflect.Value) {
	if sv.Kind() == reflect.Map {
		iter := sv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			dst[k] = mergeValue(dst[k], iter.Value().Interface())
		}
		return
	}
	for i := 0; i < sv.Len(); i++ {
		k := strconv.Itoa(i)
		dst[k] = mergeValue(dst[k], sv.Index(i).Interface())
	}
}

func mergeSlice(dst []any, sv reflect.Value) []any {
	for i := 0; i < sv.Len(); i++ {
		v := sv.Index(i).Interface()
		if i < len(dst) {
			dst[i] = mergeValue(dst[i], v)
			continue
		}
		dst = append(dst, mergeValue(nil, v))
	}
	return dst
}

func mergeable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Map:
		return !v.IsNil() && v.Type().Key().Kind() == reflect.String
	case reflect.Slice:
		return !v.IsNil()
	case reflect.Array:
		return true
	}
	return false
}

func isList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

// deepCopy copies the maps, slices and arrays reachable from v, keeping
// their types. Other values (structs, pointers, funcs) are shared.
func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out
	}
	return v
}

// CloneDeep returns a deep copy of v made by encoding it to JSON and decoding
// the result into a fresh T. The copy is exactly as lossy as JSON: fields
// without a JSON representation are dropped, and values JSON cannot encode
// (channels, funcs, cyclic structures) make CloneDeep fail with an error
// wrapping [ErrSerialization].
//
// With T = any, objects come back as map[string]any, arrays as []any and
// numbers as float64.
func CloneDeep[T any](v T) (T, error) {
	var out T
	b, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return out, nil
}
