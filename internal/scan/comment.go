package scan

import "strings"

// CommentScan is the result of [SkipAndExtract]: the offset just past
// everything consumed, and any `#`-comment lines collected along the way.
type CommentScan struct {
	End      int
	Comments []string
}

// SkipAndExtract implements the skip-and-extract comment scanner (spec
// section 4.1.5). Starting from start, it advances a cursor through src:
//
//   - lazy (greedy=false): skips inline spaces/tabs, consumes a trailing
//     `#` comment on the current line if present, then stops just past the
//     line's terminating '\n' (or at EOF). It never crosses into a second
//     line.
//   - greedy (greedy=true): skips all whitespace and line breaks between
//     comments, consuming consecutive comment lines, and stops at EOF or
//     the first non-whitespace, non-'#' byte.
func SkipAndExtract(src string, start int, greedy bool) CommentScan {
	if greedy {
		return skipGreedy(src, start)
	}

	return skipLazy(src, start)
}

func skipLazy(src string, start int) CommentScan {
	cursor := start

	for cursor < len(src) && (src[cursor] == ' ' || src[cursor] == '\t') {
		cursor++
	}

	var comments []string

	if cursor < len(src) && src[cursor] == '#' {
		commentStart := cursor
		for cursor < len(src) && src[cursor] != '\n' {
			cursor++
		}

		comments = append(comments, src[commentStart:cursor])
	}

	if cursor < len(src) && src[cursor] == '\n' {
		cursor++
	}

	return CommentScan{End: cursor, Comments: comments}
}

func skipGreedy(src string, start int) CommentScan {
	cursor := start

	var comments []string

	for cursor < len(src) {
		c := src[cursor]

		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			cursor++

			continue
		}

		if c == '#' {
			commentStart := cursor
			for cursor < len(src) && src[cursor] != '\n' {
				cursor++
			}

			comments = append(comments, src[commentStart:cursor])

			continue
		}

		break
	}

	return CommentScan{End: cursor, Comments: comments}
}

// ExtractComments returns every `#`-comment line found in src[start:end],
// split by line ending, used when the caller already knows the end offset
// of the region to scan (spec section 4.1.5, "if end offset provided").
func ExtractComments(src string, start, end int) []string {
	if start < 0 {
		start = 0
	}

	if end > len(src) {
		end = len(src)
	}

	if start >= end {
		return nil
	}

	region := src[start:end]

	var comments []string

	for _, line := range splitLines(region) {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "#") {
			comments = append(comments, trimmed)
		}
	}

	return comments
}

// splitLines splits s on both "\r\n" and "\n" without retaining the
// terminator.
func splitLines(s string) []string {
	normalized := strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(normalized, "\n")
}
