package main

import (
	"strconv"
	"strings"

	"go.jacobcolvin.com/yamledit/path"
)

// parsePath parses a dotted/bracketed path expression such as
// "spec.containers[0].name" into a [path.Path]. A leading "." is
// optional. Bracketed segments that parse as integers become index
// segments; everything else becomes a key segment.
func parsePath(expr string) path.Path {
	expr = strings.TrimPrefix(expr, ".")
	if expr == "" {
		return path.Path{}
	}

	var (
		segments []any
		cur      strings.Builder
	)

	flush := func() {
		if cur.Len() == 0 {
			return
		}

		segments = append(segments, cur.String())
		cur.Reset()
	}

	i := 0
	for i < len(expr) {
		c := expr[i]

		switch c {
		case '.':
			flush()
			i++
		case '[':
			flush()

			end := strings.IndexByte(expr[i:], ']')
			if end < 0 {
				cur.WriteString(expr[i:])
				i = len(expr)
				continue
			}

			token := expr[i+1 : i+end]

			if idx, err := strconv.Atoi(token); err == nil {
				segments = append(segments, idx)
			} else {
				segments = append(segments, token)
			}

			i += end + 1
		default:
			cur.WriteByte(c)
			i++
		}
	}

	flush()

	return path.Of(segments...)
}
