package jobscrape

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// DefaultBaseURL is the job board listing pages are fetched from.
const DefaultBaseURL = "https://wellfound.com"

// MaxRoleLength is the longest role, in characters, accepted by NormalizeRole.
const MaxRoleLength = 100

// NormalizeRole trims surrounding whitespace from role and checks that it can
// be used as a single path segment.
func NormalizeRole(role string) (string, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return "", Errorf(EINVALID, "role required")
	}
	if utf8.RuneCountInString(role) > MaxRoleLength {
		return "", Errorf(EINVALID, "role must be at most %d characters", MaxRoleLength)
	}
	if strings.Contains(role, "/") {
		return "", Errorf(EINVALID, "role must not contain '/'")
	}
	return role, nil
}

// RoleURL returns the listing page URL for role on the job board at baseURL.
// The role is path-escaped so reserved characters cannot alter the URL.
func RoleURL(baseURL, role string) string {
	return strings.TrimRight(baseURL, "/") + "/role/" + url.PathEscape(role)
}
