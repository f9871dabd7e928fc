// Package pattern detects email-shaped tokens in free text.
//
// Detection is deliberately loose: it finds addresses, it does not validate
// them. Consecutive dots, missing local parts after a dot, and single-label
// domains beyond the final dot are all accepted.
package pattern

import "regexp"

// word matches letters, digits and underscore in any script.
const word = `\p{L}\p{N}_`

var tokenRe = regexp.MustCompile(`[` + word + `.-]+@[` + word + `.-]+\.[` + word + `]+`)

// FindToken returns the left-most email-shaped token in text.
func FindToken(text string) (string, bool) {
	loc := tokenRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}

// ContainsToken reports whether text contains an email-shaped token.
func ContainsToken(text string) bool {
	_, ok := FindToken(text)
	return ok
}
