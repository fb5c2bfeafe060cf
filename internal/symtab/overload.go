package symtab

import "github.com/AdaDoom3/Ada83-sub006/internal/types"

// Candidate is one overload resolution input: a subprogram symbol plus
// its parameter types and (for functions) return type.
type Candidate struct {
	Symbol     *Symbol
	ParamTypes []*types.Type
	ReturnType *types.Type
}

// Resolve scores each candidate by arity match (+1000, strongly
// preferred) and parameter/return-type compatibility against the
// call-site argument and expected-return types, breaking ties by
// declaration order (spec §4.7). Zero-score candidates are excluded.
func Resolve(candidates []Candidate, argTypes []*types.Type, expectedReturn *types.Type) *Symbol {
	var best *Symbol
	bestScore := 0
	bestSerial := -1

	for _, c := range candidates {
		score := score(c, argTypes, expectedReturn)
		if score <= 0 {
			continue
		}
		if score > bestScore || (score == bestScore && (best == nil || c.Symbol.Serial < bestSerial)) {
			best = c.Symbol
			bestScore = score
			bestSerial = c.Symbol.Serial
		}
	}
	return best
}

func score(c Candidate, argTypes []*types.Type, expectedReturn *types.Type) int {
	if len(c.ParamTypes) != len(argTypes) {
		return 0
	}
	total := 1000
	for i, pt := range c.ParamTypes {
		if !types.Compatible(argTypes[i], pt) {
			return 0
		}
		total++
	}
	if expectedReturn != nil && c.ReturnType != nil {
		if !types.Compatible(c.ReturnType, expectedReturn) {
			return 0
		}
		total++
	}
	return total
}
