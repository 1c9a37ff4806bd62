package ingredient

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowercaser = cases.Lower(language.Und)

// Normalize derives the matching key for a display name: trimmed and
// lowercased. Pure and idempotent; two names match for aggregation and
// reconciliation purposes iff their normalized forms are equal.
func Normalize(name string) string {
	return lowercaser.String(strings.TrimSpace(name))
}
