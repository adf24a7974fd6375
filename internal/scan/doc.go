// Package scan implements the source-text scanners the mutation planners
// consult to locate safe splice points: line-ending detection, indentation
// step and per-collection indent measurement, and the comment scanner that
// walks past trailing `#...` comments in either lazy or greedy mode.
//
// Every function here is a pure function of the source bytes (and, where
// noted, a parsed [node.Node]); none retains state across calls.
package scan
