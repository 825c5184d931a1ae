// Package loader defines the consumption side of populating a
// ruleset.Builder from an external source, without performing any file
// format parsing itself — CSV/JSON decoding is explicitly out of scope
// (§6 Non-goals). A RuleSetSource/ValueGroupSource implementation is
// expected to live next to whatever decodes a concrete file format; this
// package only adapts already-decoded records into Builder calls, the way
// lvlath separates graph construction from any particular serialization.
package loader
