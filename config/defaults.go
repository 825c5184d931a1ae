package config

import (
	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/ruleset"
)

// defaultSliceCacheSize is the out-of-the-box bound for a SLICED tree's
// memoized sub-trees; 0 would mean unbounded, which is too permissive as a
// shipped default for an operator who never configures the engine.
const defaultSliceCacheSize = 256

// Default returns the Settings matching dtengine's compiled-in behavior.
func Default() Settings {
	return Settings{
		MaxDriverNames:     ruleset.MaxDriverNames,
		WildcardToken:      core.Wildcard,
		PrefixValueGroup:   core.PrefixValueGroup,
		PrefixRegex:        core.PrefixRegex,
		PrefixDateRange:    core.PrefixDateRange,
		PrefixIntegerRange: core.PrefixIntegerRange,
		SliceCacheSize:     defaultSliceCacheSize,
	}
}
