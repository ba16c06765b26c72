package respond

import (
	"regexp"
)

var (
	// three base64url segments starting with a JSON header
	jwtPattern = regexp.MustCompile(`eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)

	authHeaderPattern = regexp.MustCompile(`(?i)(authorization:?\s*)(bearer\s+)?\S+`)

	// user:password@ and :password@ forms (redis://:secret@host)
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]*):([^@\s]+)@`)

	cookiePattern = regexp.MustCompile(`(accessToken=)[^;\s]+`)
)

// SanitizeError returns err's message with tokens and credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeString masks session tokens, Authorization values, cookie values
// and URL passwords in s.
func SanitizeString(s string) string {
	s = authHeaderPattern.ReplaceAllString(s, "${1}${2}****")
	s = jwtPattern.ReplaceAllString(s, "eyJ****")
	s = cookiePattern.ReplaceAllString(s, "${1}****")
	s = urlPasswordPattern.ReplaceAllString(s, "://$1:****@")
	return s
}
