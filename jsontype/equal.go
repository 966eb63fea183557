package jsontype

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

type category int

const (
	catNull category = iota
	catBool
	catNumber
	catString
	catFunc
	catObject
)

// DeepEqual reports whether a and b are structurally equal JSON-shaped
// values.
//
// The comparison proceeds in order:
//   - the same pointer or map is equal to itself;
//   - nil against non-nil is unequal, as are values of different categories
//     (number, string, boolean, object);
//   - two slices or arrays of different length are unequal, otherwise their
//     elements are compared pairwise;
//   - any other object in a must be a string-keyed map, or [ErrInvalidType]
//     is returned, and every key of a must be present in b with an equal
//     value.
//
// Nil maps, slices and pointers count as nil.
func DeepEqual(a, b any) (bool, error) {
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b))
}

func deepEqual(a, b reflect.Value) (bool, error) {
	a, b = elem(a), elem(b)
	if identical(a, b) {
		return true, nil
	}
	ca, cb := categorize(a), categorize(b)
	if ca == catNull && cb == catNull {
		return true, nil
	}
	if ca == catNull || cb == catNull || ca != cb {
		return false, nil
	}

	switch ca {
	case catBool:
		return a.Bool() == b.Bool(), nil
	case catNumber:
		return toFloat(a) == toFloat(b), nil
	case catString:
		return a.String() == b.String(), nil
	case catFunc:
		return false, nil
	}

	if isList(a) && isList(b) {
		if a.Len() != b.Len() {
			return false, nil
		}
		for i := 0; i < a.Len(); i++ {
			if eq, err := deepEqual(a.Index(i), b.Index(i)); err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	}
	if !isRecord(a) {
		return false, fmt.Errorf("%w: %s", ErrInvalidType, a.Type())
	}

	keys := a.MapKeys()
	slices.SortFunc(keys, func(x, y reflect.Value) int {
		return strings.Compare(x.String(), y.String())
	})
	for _, k := range keys {
		bv, found := lookup(b, k.String())
		if !found {
			return false, nil
		}
		if eq, err := deepEqual(a.MapIndex(k), bv); err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

// elem unwraps interface values down to their dynamic value.
func elem(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

func identical(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && !b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return !a.IsNil() && a.Pointer() == b.Pointer()
	}
	return false
}

func categorize(v reflect.Value) category {
	if !v.IsValid() {
		return catNull
	}
	switch v.Kind() {
	case reflect.Bool:
		return catBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return catNumber
	case reflect.String:
		return catString
	case reflect.Func:
		if v.IsNil() {
			return catNull
		}
		return catFunc
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return catNull
		}
	}
	return catObject
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func isList(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func isRecord(v reflect.Value) bool {
	return v.Kind() == reflect.Map && v.Type().Key().Kind() == reflect.String
}

// lookup returns b[key] when b is a string-keyed map holding key.
func lookup(b reflect.Value, key string) (reflect.Value, bool) {
	if !isRecord(b) {
		return reflect.Value{}, false
	}
	v := b.MapIndex(reflect.ValueOf(key).Convert(b.Type().Key()))
	return v, v.IsValid()
}
