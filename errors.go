package yamledit

import (
	"errors"
	"fmt"

	"go.jacobcolvin.com/yamledit/path"
)

// Sentinel errors every concrete façade error wraps (spec section 7).
var (
	ErrPath          = errors.New("yamledit: path error")
	ErrAlias         = errors.New("yamledit: traversal crosses a yaml alias")
	ErrInvalidScalar = errors.New("yamledit: non-scalar supplied where a scalar is required")
	ErrPostEditParse = errors.New("yamledit: edit produced a document that failed to re-parse")
)

// PathError reports a path segment that is missing, out of range, or
// type-mismatched against the node it was applied to.
type PathError struct {
	Path    path.Path
	Segment int
	Reason  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("yamledit: %s at %s (segment %d)", e.Reason, e.Path, e.Segment)
}

func (e *PathError) Unwrap() error { return ErrPath }

// AliasError reports that traversal crossed a YAML alias node, which the
// editor refuses to follow (spec section 9).
type AliasError struct {
	Path    path.Path
	Segment int
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("yamledit: path %s crosses an alias at segment %d", e.Path, e.Segment)
}

func (e *AliasError) Unwrap() error { return ErrAlias }

// InvalidScalar reports that a caller supplied a non-scalar value where a
// scalar is required, such as a map-key path segment.
type InvalidScalar struct {
	Path path.Path
}

func (e *InvalidScalar) Error() string {
	return fmt.Sprintf("yamledit: %s requires a scalar key", e.Path)
}

func (e *InvalidScalar) Unwrap() error { return ErrInvalidScalar }

// PostEditParseError reports that applying a mutation's edits produced
// source text that failed to re-parse. The Editor's prior state is left
// untouched; the error is fatal only to the individual call.
type PostEditParseError struct {
	Path path.Path
	Err  error
}

func (e *PostEditParseError) Error() string {
	return fmt.Sprintf("yamledit: mutation at %s failed to re-parse: %v", e.Path, e.Err)
}

func (e *PostEditParseError) Unwrap() error { return ErrPostEditParse }
