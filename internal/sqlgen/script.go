package sqlgen

import "strings"

// minStatementLen filters out the blank or near-blank fragments a trailing
// ";" or empty lines produce when a script is split.
const minStatementLen = 5

// SplitScript splits SQL script text into candidate statements on the ';'
// character, strips newline, carriage-return, and tab characters from each
// candidate, and discards candidates shorter than five characters.
//
// The split is naive: a ';' inside a string literal or a stored-procedure
// body will corrupt the surrounding statement. That is a known limitation of
// the script format, not something this function tries to special-case.
func SplitScript(text string) []string {
	replacer := strings.NewReplacer("\n", "", "\r", "", "\t", "")
	var out []string
	for _, candidate := range strings.Split(text, ";") {
		stmt := replacer.Replace(candidate)
		if len(stmt) < minStatementLen {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
