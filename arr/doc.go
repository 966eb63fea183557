// Package arr provides standalone helper functions for Go slices: picking
// elements by index, one-level flattening, zipping, and order-preserving set
// operations.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values. Inputs are never
// modified; every result is a freshly allocated slice:
//
//	arr.Choose([]int{7, 3, 9}, 0, 2)                // → [7 9]
//	arr.Flatten([]any{1, []any{2, []any{3}}})       // → [1 2 [3]]
//	arr.Zip([]any{1, 2}, []any{"a", "b", "c"})      // → [[1 a] [2 b] [<nil> c]]
//	arr.Union([]int{1, 2}, []int{2, 3})             // → [1 2 3]
//
// # Missing positions
//
// Where an index has no element (Choose with an out-of-range index, Zip with
// ragged inputs) the zero value of T fills the slot. For []any that is nil.
//
// # Equality
//
// Uniq, Union, Intersection and Difference compare with ==. Inside an []any,
// nested maps, slices and funcs compare by identity instead: the same
// []any placed twice is a duplicate, two separately built []any{0} are not.
// Pointers compare by identity as usual.
package arr
