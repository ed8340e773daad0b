package domain

import "errors"

var ErrNoCredential = errors.New("no credential presented")
var ErrInvalidCredential = errors.New("invalid credential")

// Claims is the identity payload embedded in a session credential. It is
// carried verbatim from login through verify; "email" identifies the subject.
type Claims map[string]any

// Email returns the subject email claim, or "" when absent or not a string.
func (c Claims) Email() string {
	s, _ := c["email"].(string)
	return s
}
