package core_test

import (
	"fmt"

	"github.com/katalvlaran/dtengine/core"
)

func ExampleDriverCache_Put() {
	cache := core.NewDriverCache()

	a := cache.Put(core.NewStringDriver("VOICE"))
	b := cache.Put(core.NewStringDriver("VOICE"))

	fmt.Println(a == b)
	// Output: true
}

func ExampleDateRange_Contains() {
	r := core.DateRange{Start: 0, Finish: 100}

	fmt.Println(r.Contains(0), r.Contains(99), r.Contains(100))
	// Output: true true false
}
