package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rpupo63/portfolio-site-backend/config"
)

// FormatHashtag formats a tag value as a hashtag body for social platforms. Only
// letters, digits and underscores survive, the result is lowercased, and an empty
// string is returned when nothing usable remains or it would start with a digit.
func FormatHashtag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	var result strings.Builder
	for _, r := range tag {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			result.WriteRune(r)
		case r == '_':
			result.WriteRune(r)
		case r == '+':
			result.WriteString("plus")
		case r == '#':
			result.WriteString("sharp")
		}
	}

	formatted := strings.ToLower(result.String())
	if len(formatted) > 0 && formatted[0] >= '0' && formatted[0] <= '9' {
		return ""
	}
	return formatted
}

// Hashtags formats each tag, dropping the ones that cannot be expressed and repeats.
func Hashtags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		h := FormatHashtag(tag)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, "#"+h)
	}
	return out
}

// GetBaseURL returns PUBLIC_BASE_URL, or an empty string when it is not configured.
func GetBaseURL(cfg map[string]string) string {
	return strings.TrimSuffix(config.GetString(cfg, "PUBLIC_BASE_URL", ""), "/")
}

// BuildProjectURL constructs the public page URL of a project, e.g.
// "https://example.com/projects/{projectID}".
func BuildProjectURL(baseURL, projectID string) string {
	if baseURL == "" || projectID == "" {
		return ""
	}
	return fmt.Sprintf("%s/projects/%s", strings.TrimSuffix(baseURL, "/"), projectID)
}

// Slugify lowercases name and collapses every run of characters other than
// letters and digits into a single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
