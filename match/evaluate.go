// evaluate.go — the four evaluation modes of §4.6: single, all-matches,
// dated, and sliced.
package match

import (
	"github.com/katalvlaran/dtengine/core"
	"github.com/katalvlaran/dtengine/dtree"
)

// EvaluateSingle descends root against inputs and returns the highest-
// weight matching rule identifier, or ("", false) if no leaf is reached
// (§4.6 "Weighted single-match algorithm").
func EvaluateSingle(root *dtree.Root, inputs []string) (string, bool, error) {
	if err := checkArity(root.Arity, inputs); err != nil {
		return "", false, err
	}
	best := dtree.Best(root.Candidates(inputs))
	if best == nil {
		return "", false, nil
	}
	return best.RuleIdentifier, true, nil
}

// EvaluateAll returns every rule whose path fully matches inputs, in
// descending-weight order; includeWildcards controls whether zero-weight
// (all-wildcard) matches are included (§4.6 "All-matches algorithm").
func EvaluateAll(root *dtree.Root, inputs []string, includeWildcards bool) ([]EvaluationResult, error) {
	if err := checkArity(root.Arity, inputs); err != nil {
		return nil, err
	}
	candidates := root.Candidates(inputs)
	out := make([]EvaluationResult, 0, len(candidates))
	for _, c := range candidates {
		if c.Weight == 0 && !includeWildcards {
			continue
		}
		out = append(out, EvaluationResult{
			RuleIdentifier: c.RuleIdentifier,
			RuleCode:       c.RuleCode,
			Outputs:        c.Outputs,
			Weight:         c.Weight,
		})
	}
	sortByWeightDesc(out)
	return out, nil
}

// EvaluateDated behaves like EvaluateSingle but additionally filters
// candidates to those whose [start, end) contains instant (§4.6 "Dated
// evaluation").
func EvaluateDated(root *dtree.Root, inputs []string, instant core.Instant, hasInstant bool) (string, bool, error) {
	if err := checkArity(root.Arity, inputs); err != nil {
		return "", false, err
	}
	if !hasInstant {
		return "", false, ErrMissingInstant
	}

	candidates := root.Candidates(inputs)
	filtered := candidates[:0:0]
	for _, c := range candidates {
		if c.Range.Contains(instant) {
			filtered = append(filtered, c)
		}
	}
	best := dtree.Best(filtered)
	if best == nil {
		return "", false, nil
	}
	return best.RuleIdentifier, true, nil
}

// EvaluateSliced resolves tsr's sub-tree for instant and evaluates against
// it with the dated semantics (§4.6 "Sliced evaluation").
func EvaluateSliced(tsr *dtree.TimeSlicedRootNode, inputs []string, instant core.Instant, hasInstant bool) (string, bool, error) {
	if !hasInstant {
		return "", false, ErrMissingInstant
	}
	if len(inputs) != tsr.Arity() {
		return "", false, ErrInputArity
	}

	sub, err := tsr.SubTree(instant)
	if err != nil {
		return "", false, err
	}
	return EvaluateDated(sub, inputs, instant, true)
}

func checkArity(arity int, inputs []string) error {
	if len(inputs) == 0 || len(inputs) != arity {
		return ErrInputArity
	}
	return nil
}

func sortByWeightDesc(results []EvaluationResult) {
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j-1].Weight < results[j].Weight; j-- {
			results[j-1], results[j] = results[j], results[j-1]
		}
	}
}
