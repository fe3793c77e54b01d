// SPDX-License-Identifier: MIT

package inference

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy"
	"github.com/katalvlaran/lvfuzzy/defuzz"
)

// Configuration errors (returned by Configure only).
var (
	// ErrEmptyRuleBase indicates Configure was called without rules or variables.
	ErrEmptyRuleBase = fmt.Errorf("inference: empty rule base: %w", lvfuzzy.ErrConfiguration)

	// ErrNilComponent indicates a nil variable or rule.
	ErrNilComponent = fmt.Errorf("inference: nil variable or rule: %w", lvfuzzy.ErrConfiguration)

	// ErrDuplicateVariable indicates two variables with the same name.
	ErrDuplicateVariable = fmt.Errorf("inference: duplicate variable: %w", lvfuzzy.ErrConfiguration)

	// ErrDuplicateRule indicates two rules with the same explicit name.
	ErrDuplicateRule = fmt.Errorf("inference: duplicate rule name: %w", lvfuzzy.ErrConfiguration)

	// ErrVariableRole indicates a variable used both in an antecedent and as
	// a consequent; the engine is single-stage and does not chain rules.
	ErrVariableRole = fmt.Errorf("inference: variable is both input and output: %w", lvfuzzy.ErrConfiguration)

	// ErrUnknownFallback indicates a fallback for a variable that is not a rule output.
	ErrUnknownFallback = fmt.Errorf("inference: fallback for non-output variable: %w", lvfuzzy.ErrConfiguration)
)

// Per-call errors.
var (
	// ErrMissingInput indicates an antecedent variable without a crisp value.
	ErrMissingInput = fmt.Errorf("inference: missing input: %w", lvfuzzy.ErrInference)

	// ErrUnknownInput indicates a value for an undeclared or output variable.
	ErrUnknownInput = fmt.Errorf("inference: unknown input: %w", lvfuzzy.ErrInference)

	// ErrInvalidInput indicates a NaN or infinite crisp input.
	ErrInvalidInput = fmt.Errorf("inference: invalid input: %w", lvfuzzy.ErrInference)

	// ErrZeroMembershipArea is defuzz.ErrZeroMembershipArea, re-exported so
	// callers of the engine need not import defuzz.
	ErrZeroMembershipArea = defuzz.ErrZeroMembershipArea
)
