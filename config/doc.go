// Package config models the engine-wide tunables that donnigundala-dg-cache's
// config.go treats as a decoded, validated settings struct rather than scattered
// constants: driver/prefix limits and the slice-cache bound, loadable from a
// YAML file via viper or used as compiled-in defaults.
//
// dtengine's parsing (driver prefixes, the wildcard token, the 31-driver cap)
// is compiled against fixed values elsewhere in the module; Settings exists so
// those values are named and validated in one place rather than scattered
// across packages, and so the one genuinely runtime-tunable knob — the
// time-sliced tree's per-slice cache size — has a documented home.
package config
