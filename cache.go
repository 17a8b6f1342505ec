package airtablemock

import (
	"sync"

	"github.com/bayesimpact/airtablemock/formula"
)

var formulaCache sync.Map // map[string]formula.Predicate

// compiledFormula compiles the formula once per distinct text. Predicates
// are immutable, so the cache survives Clear.
func compiledFormula(text string) (formula.Predicate, error) {
	if cached, ok := formulaCache.Load(text); ok {
		return cached.(formula.Predicate), nil
	}
	predicate, err := formula.Compile(text)
	if err != nil {
		return nil, err
	}
	formulaCache.Store(text, predicate)
	return predicate, nil
}
