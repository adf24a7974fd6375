package scan

import "errors"

// ErrEmptyBlockIndent is returned by [ListIndent] and [MapIndent] when asked
// to measure the indent of a block collection with no children -- a
// conceptually impossible request, since an empty block collection cannot
// appear in YAML source (spec section 4.1.3). The planners in internal/plan
// fall back to an indent of 0 on this error and [IndentStep] skips the
// candidate, so it never reaches the façade's callers.
var ErrEmptyBlockIndent = errors.New("scan: cannot measure indent of an empty block collection")
