// Package edit defines the atomic source patch the engine's mutation
// planners produce and the façade applies, per spec section 3 ("The
// planner inspects S around N.span ... and emits one SourceEdit(offset,
// length, replacement)").
package edit
