// Package value defines the tagged sum type that flows through the public
// yamledit API whenever a caller injects a new logical value (the argument
// to Update, AppendTo, PrependTo, Insert, and Splice).
//
// A [Value] is exactly one of: null, bool, int64, float64, or string.
// Collections are not represented here -- they are built directly as
// [go.jacobcolvin.com/yamledit/node.Node] trees via node.NewSequence,
// node.NewMapping, and node.FromAny,
// since a collection always carries span and style metadata that a bare
// scalar variant would not.
package value
