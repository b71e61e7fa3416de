// Package slugify derives URL slugs from titles.
//
// A slug is lowercase, contains only [a-z0-9-], has no consecutive hyphens
// and no leading/trailing hyphen. Blog and service slugs must be unique
// within their collection; Unique appends -2, -3, ... until the caller's
// existence check passes.
package slugify

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const maxLen = 100

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphens  = regexp.MustCompile(`-+`)
)

// Slugify converts free text into a slug. Diacritics are stripped
// (é becomes e), everything outside [a-z0-9] collapses to a single hyphen,
// and the result is trimmed and length-limited. An input with no usable
// characters yields "item".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "item"
	}
	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	return s
}

// ExistsFunc reports whether a slug is already taken. An id being updated
// should be excluded by the caller's implementation.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Unique derives a slug from title and suffixes it until exists reports it
// free. The suffix counter is bounded; in practice collisions beyond a
// handful indicate duplicate titles, which the suffix handles fine.
func Unique(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := Slugify(title)
	slug := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
