// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy"
)

var (
	// ErrEmptyAntecedent indicates a rule without antecedent clauses.
	ErrEmptyAntecedent = fmt.Errorf("rule: empty antecedent: %w", lvfuzzy.ErrConfiguration)

	// ErrInvalidWeight indicates a weight outside [0,1] or NaN.
	ErrInvalidWeight = fmt.Errorf("rule: weight outside [0,1]: %w", lvfuzzy.ErrConfiguration)

	// ErrUnknownOperator indicates an unrecognized operator.
	ErrUnknownOperator = fmt.Errorf("rule: unknown operator: %w", lvfuzzy.ErrConfiguration)

	// ErrUnknownVariable indicates a clause naming a variable the rule base lacks.
	ErrUnknownVariable = fmt.Errorf("rule: unknown variable: %w", lvfuzzy.ErrConfiguration)

	// ErrUnknownTerm indicates a clause naming a term its variable lacks.
	ErrUnknownTerm = fmt.Errorf("rule: unknown term: %w", lvfuzzy.ErrConfiguration)

	// ErrInvalidClause indicates a clause with an empty variable or term name.
	ErrInvalidClause = fmt.Errorf("rule: invalid clause: %w", lvfuzzy.ErrConfiguration)
)
