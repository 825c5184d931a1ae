// constants.go — shared constants used by the RuleSet builder, ensuring
// consistent defaults and validation across construction.
package ruleset

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors with the constructor name.
//-----------------------------------------------------------------------------

const (
	// MethodAddRule is the canonical name for Builder.AddRule.
	MethodAddRule = "AddRule"
	// MethodAddValueGroup is the canonical name for Builder.AddValueGroup.
	MethodAddValueGroup = "AddValueGroup"
	// MethodBuild is the canonical name for Builder.Build.
	MethodBuild = "Build"
)

//-----------------------------------------------------------------------------
// Engine limits (§3 "Maximum 31 drivers").
//-----------------------------------------------------------------------------

// MaxDriverNames is the maximum number of driver names a RuleSet may
// declare (§3 "WeightedDriver ... Maximum 31 drivers"), since weight is
// packed into a uint32 with the top bit reserved.
const MaxDriverNames = 31
