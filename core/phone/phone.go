// Package phone provides stateless validation and normalization for Nigerian
// mobile phone numbers.
//
// A well-formed number is ten local digits starting with 7, 8, or 9 followed
// by 0 or 1, optionally prefixed with "+234", "234", or "0":
//
//	phone.IsValid("08012345678")    // true
//	phone.IsValid("+2348012345678") // true
//	phone.Format("+2348012345678")  // "8012345678"
package phone

import (
	"regexp"
	"strings"
	"unicode"
)

// localPattern matches a Nigerian mobile number after whitespace stripping,
// anchored at both ends.
var localPattern = regexp.MustCompile(`^(\+?234|0)?[789][01][0-9]{8}$`)

// IsValid reports whether phone is a well-formed Nigerian mobile number.
// Whitespace is stripped before matching. Validity here means well-formed,
// not active or deliverable.
func IsValid(phone string) bool {
	return localPattern.MatchString(stripSpace(phone))
}

// Format normalizes phone to its ten-digit local form by stripping whitespace
// and dropping a leading "+234", "234", or "0" prefix. It does not validate;
// a malformed number is normalized best effort. Callers should check IsValid
// first.
func Format(phone string) string {
	p := stripSpace(phone)
	switch {
	case strings.HasPrefix(p, "+234"):
		return p[4:]
	case strings.HasPrefix(p, "234"):
		return p[3:]
	case strings.HasPrefix(p, "0"):
		return p[1:]
	default:
		return p
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
