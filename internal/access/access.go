// Package access provides the predicate that gates entry into an assessment.
package access

import "strings"

// Authorizer decides whether a candidate access code may start an assessment.
type Authorizer func(candidate string) bool

// Token returns an Authorizer that accepts candidate text matching secret
// ignoring surrounding whitespace and letter case. An empty secret accepts
// everything.
func Token(secret string) Authorizer {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return Open()
	}
	return func(candidate string) bool {
		return strings.EqualFold(strings.TrimSpace(candidate), secret)
	}
}

// Open returns an Authorizer that accepts any candidate.
func Open() Authorizer {
	return func(string) bool { return true }
}
