// Package node defines the parsed YAML tree that the edit-planning engine
// operates on: scalars, sequences, and mappings, each carrying a style tag
// and a byte-offset span into the original source text.
//
// A [Node] is produced by internal/yamlparse from a real YAML document and
// consumed by internal/scan, internal/encode, internal/plan, and
// internal/normalize. Collections are ordered ([Node.Seq], [Node.Map]); map
// keys compare by deep structural equality via [Node.Equal], not identity.
//
// Styles are orthogonal to value: a scalar's [ScalarStyle] and a
// collection's [CollectionStyle] record how the source chose to render a
// value, not what the value is. [ScalarAny] and [CollectionAny] mean "not
// pinned by the source" -- synthesized nodes (caller-supplied values with no
// source span) use these unless the caller requests a specific style.
package node
