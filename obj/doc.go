// Package obj provides standalone helpers for Go maps used as records:
// projecting keys (Pick, Omit, PickWhere), transforming values and entries
// (MapValues, MapObject), and working with nested JSON-shaped data
// (Merge, Get, CloneDeep).
//
// # Purity
//
// Every helper returns a new map and leaves its input untouched, with one
// deliberate exception: [Merge] writes source into target in place and
// returns target.
//
//	target := map[string]any{"a": "taco", "b": map[string]any{"a": "burrito"}}
//	obj.Merge(target, map[string]any{"b": map[string]any{"c": "platter"}})
//	// target → {"a": "taco", "b": {"a": "burrito", "c": "platter"}}
//
// # Key order
//
// Go maps have no iteration order. Helpers that expose entries as a sequence
// ([Entries], [MapObject]) sort them by key, so results are reproducible.
//
// # JSON-shaped data
//
// [Merge] and [Get] treat string-keyed maps as objects and slices or arrays
// as arrays, whatever their element type. Merge only merges in place into
// map[string]any and []any, the shapes produced by decoding JSON into an any;
// any other container it writes is a deep copy of the source.
//
// [CloneDeep] is a JSON round trip and inherits JSON's limits: unexported
// fields, funcs and channels are dropped or rejected, and numbers decoded
// into any become float64.
package obj
