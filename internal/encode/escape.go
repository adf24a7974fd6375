package encode

import "strings"

// unprintableEscapes maps each always-escaped code unit (spec section 4.2,
// "Escape tables") to its short escape form.
var unprintableEscapes = map[rune]string{
	0:    `\0`,
	7:    `\a`,
	8:    `\b`,
	11:   `\v`,
	12:   `\f`,
	13:   `\r`,
	27:   `\e`,
	133:  `\N`,
	160:  `\_`,
	8232: `\L`,
	8233: `\P`,
}

// doubleQuoteEscapes adds the escapes double-quoted style applies on top of
// [unprintableEscapes].
var doubleQuoteEscapes = map[rune]string{
	9:  `\t`,
	10: `\n`,
	34: `\"`,
	47: `\/`,
	92: `\\`,
}

// hasUnprintable reports whether s contains any code unit from
// [unprintableEscapes] (spec section 4.2, step 2).
func hasUnprintable(s string) bool {
	for _, r := range s {
		if _, ok := unprintableEscapes[r]; ok {
			return true
		}
	}

	return false
}

// escapeDoubleQuoted renders s for inclusion inside a double-quoted scalar,
// escaping every code unit from both escape tables.
func escapeDoubleQuoted(s string) string {
	var b strings.Builder

	for _, r := range s {
		if esc, ok := doubleQuoteEscapes[r]; ok {
			b.WriteString(esc)

			continue
		}

		if esc, ok := unprintableEscapes[r]; ok {
			b.WriteString(esc)

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// quoteDouble renders s as a double-quoted YAML scalar.
func quoteDouble(s string) string {
	return `"` + escapeDoubleQuoted(s) + `"`
}

// quoteSingle renders s as a single-quoted YAML scalar, doubling every
// embedded "'".
func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
