package obj_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-turtledash/obj"
)

func TestMergeNested(t *testing.T) {
	target := map[string]any{
		"a": "taco",
		"b": map[string]any{"a": "burrito", "b": "combo"},
		"c": []any{20},
	}
	source := map[string]any{
		"a": "churro",
		"b": map[string]any{"c": "platter"},
	}
	got := obj.Merge(target, source)
	require.Equal(t, map[string]any{
		"a": "churro",
		"b": map[string]any{"a": "burrito", "b": "combo", "c": "platter"},
		"c": []any{20},
	}, got)
}

func TestMergeMutatesTarget(t *testing.T) {
	target := map[string]any{"a": 1}
	got := obj.Merge(target, map[string]any{"b": 2})
	require.Equal(t, 2, target["b"])
	got["c"] = 3
	require.Equal(t, 3, target["c"], "Merge returns target itself")
}

func TestMergeArraysByIndex(t *testing.T) {
	target := map[string]any{
		"list": []any{1, map[string]any{"x": 1}, 3},
	}
	source := map[string]any{
		"list": []any{"one", map[string]any{"y": 2}},
	}
	obj.Merge(target, source)
	require.Equal(t, []any{"one", map[string]any{"x": 1, "y": 2}, 3}, target["list"])
}

func TestMergeLongerSourceArrayExtends(t *testing.T) {
	target := map[string]any{"list": []any{1}}
	obj.Merge(target, map[string]any{"list": []any{9, 8, 7}})
	require.Equal(t, []any{9, 8, 7}, target["list"])
}

func TestMergeCopiesSourceObjects(t *testing.T) {
	inner := map[string]any{"deep": []any{1, 2}}
	source := map[string]any{"x": inner}
	target := map[string]any{}
	obj.Merge(target, source)

	inner["deep"].([]any)[0] = "mutated"
	inner["new"] = true

	require.Equal(t, map[string]any{"deep": []any{1, 2}}, target["x"])
}

func TestMergeMismatchedKindsOverwrite(t *testing.T) {
	target := map[string]any{
		"arr":    []any{1},
		"scalar": 5,
		"typed":  map[string]int{"a": 1},
	}
	obj.Merge(target, map[string]any{
		"arr":    map[string]any{"now": "an object"},
		"scalar": map[string]any{"k": "v"},
		"typed":  map[string]any{"b": 2},
	})
	require.Equal(t, map[string]any{"now": "an object"}, target["arr"])
	require.Equal(t, map[string]any{"k": "v"}, target["scalar"])
	require.Equal(t, map[string]any{"b": 2}, target["typed"])
}

func TestMergeArrayIntoObjectWritesIndexKeys(t *testing.T) {
	target := map[string]any{
		"obj": map[string]any{"a": 1, "1": map[string]any{"x": 1}},
	}
	obj.Merge(target, map[string]any{
		"obj": []any{"zero", map[string]any{"y": 2}},
	})
	require.Equal(t, map[string]any{
		"a": 1,
		"0": "zero",
		"1": map[string]any{"x": 1, "y": 2},
	}, target["obj"])
}

func TestMergeTypedSourceIntoObject(t *testing.T) {
	target := map[string]any{"env": map[string]any{"A": "1", "keep": true}}
	obj.Merge(target, map[string]any{"env": map[string]string{"A": "2", "B": "3"}})
	require.Equal(t, map[string]any{"A": "2", "B": "3", "keep": true}, target["env"])
}

func TestMergeTypedSliceIntoArray(t *testing.T) {
	target := map[string]any{"list": []any{"a", "b", "c"}}
	obj.Merge(target, map[string]any{"list": []int{1, 2}})
	require.Equal(t, []any{1, 2, "c"}, target["list"])
}

func TestMergeDeepCopiesTypedContainers(t *testing.T) {
	ints := []int{1, 2}
	labels := map[string]string{"env": "prod"}
	rows := []map[string]any{{"id": 1}}
	fixed := [2][]int{{1}, {2}}
	source := map[string]any{"ints": ints, "labels": labels, "rows": rows, "fixed": fixed}

	target := obj.Merge(map[string]any{}, source)

	ints[0] = 99
	labels["env"] = "dev"
	rows[0]["id"] = 2
	fixed[0][0] = 42

	require.Equal(t, []int{1, 2}, target["ints"])
	require.Equal(t, map[string]string{"env": "prod"}, target["labels"])
	require.Equal(t, []map[string]any{{"id": 1}}, target["rows"])
	require.Equal(t, [2][]int{{1}, {2}}, target["fixed"])
}

func TestMergeNilTarget(t *testing.T) {
	got := obj.Merge(nil, map[string]any{"a": []any{1}})
	require.Equal(t, map[string]any{"a": []any{1}}, got)

	require.NotNil(t, obj.Merge(nil, nil))
}

func TestMergeNonMergeableValuesOverwrite(t *testing.T) {
	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	target := map[string]any{"at": map[string]any{"old": true}, "gone": "x"}
	obj.Merge(target, map[string]any{"at": when, "gone": nil})
	require.Equal(t, when, target["at"])
	require.Contains(t, target, "gone")
	require.Nil(t, target["gone"])
}

// ─── CloneDeep ───────────────────────────────────────────────────────────────

func TestCloneDeepAny(t *testing.T) {
	in := map[string]any{"a": 1, "b": []any{"x", map[string]any{"c": true}}}
	got, err := obj.CloneDeep[any](in)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"a": float64(1),
		"b": []any{"x", map[string]any{"c": true}},
	}, got)

	in["b"].([]any)[0] = "mutated"
	require.Equal(t, "x", got.(map[string]any)["b"].([]any)[0])
}

func TestCloneDeepTyped(t *testing.T) {
	type inner struct {
		Tags []string `json:"tags"`
	}
	type record struct {
		Name   string `json:"name"`
		Inner  *inner `json:"inner"`
		hidden int
	}
	in := record{Name: "n", Inner: &inner{Tags: []string{"a"}}, hidden: 7}
	got, err := obj.CloneDeep(in)
	require.NoError(t, err)
	require.Equal(t, "n", got.Name)
	require.Equal(t, []string{"a"}, got.Inner.Tags)
	require.NotSame(t, in.Inner, got.Inner)
	require.Zero(t, got.hidden, "unexported fields do not survive a JSON round trip")
}

func TestCloneDeepUnsupported(t *testing.T) {
	_, err := obj.CloneDeep[any](map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	require.True(t, errors.Is(err, obj.ErrSerialization))

	_, err = obj.CloneDeep[any](func() {})
	require.ErrorIs(t, err, obj.ErrSerialization)
}
