package yamlparse

import (
	"strings"

	goyaml "github.com/goccy/go-yaml"
)

// dangerousRunes is the set of flow indicator characters that always force
// a string out of plain style, per spec section 4.2 ("Dangerous string
// test"): "s contains any of { } [ ] ,".
const dangerousRunes = "{}[],"

// ProbeDangerous reports whether s is unsafe to render as a plain (unquoted)
// scalar: parsing s as a single YAML document either fails or yields a
// value other than the string s itself, or s contains a flow indicator
// character that would be ambiguous outside of quotes. A string containing a
// single quote anywhere, or starting with "-", is also reported as dangerous.
//
// Per spec section 9 ("warning-callback scoping"), a probe failure is
// expected input here, not a caller error: malformed-looking plain text
// such as "]" or "*anchor" must be classified as dangerous, never surfaced
// as a diagnostic. goccy/go-yaml's Unmarshal reports such input only
// through its returned error, so treating any error as "dangerous" already
// keeps the probe silent; callers that route warnings through slog must
// still take care not to log probe errors at any level above debug.
func ProbeDangerous(s string) bool {
	if strings.ContainsAny(s, dangerousRunes) || strings.ContainsRune(s, '\'') || strings.HasPrefix(s, "-") {
		return true
	}

	var decoded any

	err := goyaml.Unmarshal([]byte(s), &decoded)
	if err != nil {
		return true
	}

	text, ok := decoded.(string)
	if !ok {
		return true
	}

	return text != s
}
