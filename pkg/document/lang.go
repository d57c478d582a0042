package document

import (
	"strings"

	"golang.org/x/text/language"
)

// SameLanguage reports whether tag names the language want. Tags are
// compared exactly after BCP 47 canonicalization, so "EN" matches "en" but
// "en-GB" does not match "en".
func SameLanguage(tag, want string) bool {
	tag, want = strings.TrimSpace(tag), strings.TrimSpace(want)
	if tag == "" || want == "" {
		return false
	}
	if strings.EqualFold(tag, want) {
		return true
	}
	t1, err := language.Parse(tag)
	if err != nil {
		return false
	}
	t2, err := language.Parse(want)
	if err != nil {
		return false
	}
	return t1.String() == t2.String()
}
