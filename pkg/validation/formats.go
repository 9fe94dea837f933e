package validation

import "regexp"

// emailPattern is the simple local@domain check the API enforces on user
// email addresses. It is intentionally permissive; deliverability is not
// this layer's concern.
var emailPattern = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
