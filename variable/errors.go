// SPDX-License-Identifier: MIT

package variable

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy"
)

var (
	// ErrInvalidUniverse indicates non-finite bounds, Min >= Max or Resolution <= 0.
	ErrInvalidUniverse = fmt.Errorf("variable: invalid universe: %w", lvfuzzy.ErrConfiguration)

	// ErrTooManySamples indicates a sampled universe whose resolution is too
	// fine for its range (2^20 samples or more).
	ErrTooManySamples = fmt.Errorf("variable: too many samples: %w", lvfuzzy.ErrConfiguration)

	// ErrDuplicateTerm indicates two terms with the same name in one variable.
	ErrDuplicateTerm = fmt.Errorf("variable: duplicate term: %w", lvfuzzy.ErrConfiguration)

	// ErrInvalidTerm indicates an empty term name or a nil membership function.
	ErrInvalidTerm = fmt.Errorf("variable: invalid term: %w", lvfuzzy.ErrConfiguration)

	// ErrInvalidVariable indicates an empty variable name or a variable without terms.
	ErrInvalidVariable = fmt.Errorf("variable: invalid variable: %w", lvfuzzy.ErrConfiguration)

	// ErrUnknownTerm is returned by lookups of a term the variable does not define.
	ErrUnknownTerm = fmt.Errorf("variable: unknown term: %w", lvfuzzy.ErrConfiguration)
)
