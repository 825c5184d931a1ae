// helpers.go — small internal helper functions shared by Builder methods.
//
// Design principles (unchanged from the teacher): single responsibility per
// helper, uniform error wrapping via builderErrorf, minimal allocation.
package ruleset

import "fmt"

// builderErrorf wraps an inner error message with the given method context,
// returning "<Method>: <formatted message>".
func builderErrorf(method, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s", method, inner)
}

// builderWrap attaches method context to a sentinel error while preserving
// it for errors.Is, returning "<Method>: <context>: <err>".
func builderWrap(method, context string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, context, err)
}

// freshCopyOfOutputs returns a defensive copy of an outputs map so the
// builder never aliases caller-owned state.
func freshCopyOfOutputs(outputs map[string]string) map[string]string {
	out := make(map[string]string, len(outputs))
	for k, v := range outputs {
		out[k] = v
	}
	return out
}
