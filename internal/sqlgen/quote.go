package sqlgen

import (
	"fmt"
	"math"
	"strings"
)

// nullKeyword is emitted for missing values instead of a quoted literal.
const nullKeyword = "NULL"

// missing sentinel strings. Upstream tabular exports stringify missing cells
// as "nan" (pandas/NaN) or "None"; both must reach the database as SQL NULL,
// not as text.
func isMissingSentinel(s string) bool {
	return s == "nan" || s == "None"
}

// QuoteLiteral renders one value as a SQL literal: the value is stringified,
// every embedded single quote is doubled, and the result is wrapped in single
// quotes. nil, float NaN, and the stringified missing sentinels ("nan",
// "None") become the unquoted keyword NULL.
//
// This is naive character-substitution escaping, kept for compatibility with
// the legacy literal insert path. Prefer the parameter-bound builders for
// untrusted input.
func QuoteLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return nullKeyword
	case float64:
		if math.IsNaN(val) {
			return nullKeyword
		}
	case float32:
		if math.IsNaN(float64(val)) {
			return nullKeyword
		}
	case []byte:
		v = string(val)
	}
	s := fmt.Sprint(v)
	if isMissingSentinel(s) {
		return nullKeyword
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
