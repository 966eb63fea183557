package obj_test

import (
	"fmt"

	"github.com/hasbyte1/go-turtledash/obj"
)

func ExampleMerge() {
	target := map[string]any{
		"a": "taco",
		"b": map[string]any{"a": "burrito", "b": "combo"},
		"c": []any{20},
	}
	obj.Merge(target, map[string]any{
		"a": "churro",
		"b": map[string]any{"c": "platter"},
	})
	fmt.Println(target)
	// Output: map[a:churro b:map[a:burrito b:combo c:platter] c:[20]]
}

func ExamplePick() {
	fmt.Println(obj.Pick(map[string]int{"a": 1, "b": 2, "c": 3}, "a", "c", "z"))
	// Output: map[a:1 c:3]
}

func ExampleOmit() {
	fmt.Println(obj.Omit(map[string]int{"a": 1, "b": 2, "c": 3}, "b"))
	// Output: map[a:1 c:3]
}

func ExampleGet() {
	m := map[string]any{"db": map[string]any{"hosts": []any{"a.local", "b.local"}}}
	fmt.Println(obj.Get(m, []string{"db", "hosts", "1"}, "none"))
	fmt.Println(obj.Get(m, []string{"db", "port"}, 5432))
	// Output:
	// b.local
	// 5432
}
