// Package plan implements the engine's mutation planners (spec section
// 4.3): the eight cases that turn a requested edit against a parsed node
// tree into a single edit.SourceEdit, by consulting the scan, encode, and
// normalize helpers.
package plan
