// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"unicode"
)

// identRegex matches a complete identifier.
var identRegex = regexp.MustCompile(`^[\p{L}\p{Nd}_]+$`)

// IsIdentRune reports whether r may appear inside an identifier.
func IsIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Parse checks that rawID is a well-formed identifier and returns it.
func Parse(rawID string) (string, error) {
	if rawID == "" {
		return "", fmt.Errorf("identifier cannot be empty")
	}
	if !identRegex.MatchString(rawID) {
		return "", fmt.Errorf("invalid identifier %q: only letters, digits and '_' are allowed", rawID)
	}
	return rawID, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// compile-time constants.
func MustParse(rawID string) string {
	id, err := Parse(rawID)
	if err != nil {
		panic(err)
	}
	return id
}
