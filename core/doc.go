// Package core defines the foundational, time-aware primitives shared by
// every other dtengine package: Instant and DateRange (§3 of the spec),
// and the InputDriver family with its DriverCache (§4.1, component C1).
//
// All core APIs are safe for concurrent reads; DriverCache additionally
// guards its single write path (Put) with a mutex so that rule-set
// construction can normalize drivers from multiple goroutines without
// external locking.
//
// This file declares package-level documentation only; see temporal.go,
// driver.go, and cache.go for the actual types.
package core
