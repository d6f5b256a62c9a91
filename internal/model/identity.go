package model

import (
	"regexp"
	"strings"
)

// Identity uniquely identifies a participant across the system.
// Real players use their email address; the AI respondent uses the
// reserved AIIdentity value, which deliberately does not look like
// an email address.
type Identity string

// AIIdentity is the reserved identity of the scripted AI respondent.
const AIIdentity Identity = "chatgpt"

// aiMarker is the token that marks an identity as the AI respondent.
const aiMarker = "chatgpt"

// emailPattern is a pragmatic local@domain.tld shape check, not an
// RFC-complete validator. It only needs to separate real player
// identities from the reserved AI identity.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// LooksLikeEmail reports whether s has the syntactic shape of an email address.
func LooksLikeEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsAIIdentity reports whether the candidate identifies the AI respondent:
// it must not look like a real email address and must contain the AI
// marker token, case-insensitively. This predicate is how "guessed the AI"
// and "messaged the AI" are distinguished from ordinary player identities.
func IsAIIdentity(candidate Identity) bool {
	s := string(candidate)
	return !LooksLikeEmail(s) && strings.Contains(strings.ToLower(s), aiMarker)
}

// SanitizeIdentity replaces the characters in an email-shaped identity
// that are unsafe as a storage key segment.
func SanitizeIdentity(id Identity) string {
	r := strings.NewReplacer("@", "_", ".", "_")
	return r.Replace(string(id))
}
