// SPDX-License-Identifier: MIT

package membership

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy"
)

var (
	// ErrInvalidShape indicates shape parameters that violate their ordering
	// invariant, are not finite, or are otherwise malformed.
	ErrInvalidShape = fmt.Errorf("membership: invalid shape parameters: %w", lvfuzzy.ErrConfiguration)

	// ErrUnknownShape indicates an unrecognized shape tag passed to New.
	ErrUnknownShape = fmt.Errorf("membership: unknown shape: %w", lvfuzzy.ErrConfiguration)
)

// shapeErrorf attaches shape context to ErrInvalidShape.
func shapeErrorf(shape Shape, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", shape, fmt.Sprintf(format, args...), ErrInvalidShape)
}
