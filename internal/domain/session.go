package domain

import "strings"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// ParseRole accepts the backend spelling (ADMIN/CLIENT) as well as the lower-case form.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleClient:
		return RoleClient, true
	}
	return "", false
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleClient
}

// Session is the acting credential and its role. Both are set or neither is.
type Session struct {
	Credential string `json:"credential" yaml:"credential"`
	Role       Role   `json:"role" yaml:"role"`
}

func (s Session) Valid() bool {
	return s.Credential != "" && s.Role.Valid()
}

func (s Session) Masked() string {
	return MaskCredential(s.Credential)
}

// MaskCredential keeps at most the first 8 characters of the credential and
// never more than half of it.
func MaskCredential(credential string) string {
	runes := []rune(credential)
	visible := min(8, len(runes)/2)
	return string(runes[:visible]) + strings.Repeat("•", len(runes)-visible)
}

// Validation is the backend's verdict on a credential.
type Validation struct {
	Valid       bool
	Role        Role
	DisplayName string
	RateLimit   int
}
