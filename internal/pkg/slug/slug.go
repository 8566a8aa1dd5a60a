// Package slug builds DNS-safe portal subdomains from property titles.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxLength keeps subdomains inside the single-label DNS limit.
const MaxLength = 63

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	dashRuns     = regexp.MustCompile(`-{2,}`)
	validPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// Make slugifies s into a subdomain label: lowercase, alphanumerics and
// single hyphens, trimmed to MaxLength.
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLength {
		s = strings.Trim(s[:MaxLength], "-")
	}
	return s
}

// ForProperty builds the default portal subdomain for a property:
// slugified title suffixed with the property id to guarantee uniqueness.
func ForProperty(title string, id int64) string {
	base := Make(title)
	suffix := fmt.Sprintf("-%d", id)
	if base == "" {
		return fmt.Sprintf("property%s", suffix)
	}
	if len(base)+len(suffix) > MaxLength {
		base = strings.Trim(base[:MaxLength-len(suffix)], "-")
	}
	return base + suffix
}

// Valid reports whether s is an acceptable subdomain label.
func Valid(s string) bool {
	if s == "" || len(s) > MaxLength {
		return false
	}
	return validPattern.MatchString(s)
}
