package validators

import (
	"errors"
	"strings"

	"github.com/Lead-Coder/api-rate-limit/internal/domain"
)

var (
	ErrEmptyName        = errors.New("client name is required")
	ErrInvalidRateLimit = errors.New("rate limit must be a positive number")
	ErrInvalidStatus    = errors.New("status must be active or inactive")
	ErrEmptyPatch       = errors.New("nothing to update")
	ErrEmptyCredential  = errors.New("API key is required")
)

// IsValidation reports whether err came from this package.
func IsValidation(err error) bool {
	for _, e := range []error{ErrEmptyName, ErrInvalidRateLimit, ErrInvalidStatus, ErrEmptyPatch, ErrEmptyCredential} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func ValidateNewClient(c *domain.NewClient) error {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	if c.DisplayName == "" {
		return ErrEmptyName
	}
	if c.RateLimitPerMinute <= 0 {
		return ErrInvalidRateLimit
	}
	return nil
}

func ValidateClientPatch(p *domain.ClientPatch) error {
	if p.RateLimitPerMinute == nil && p.Status == nil {
		return ErrEmptyPatch
	}
	if p.RateLimitPerMinute != nil && *p.RateLimitPerMinute <= 0 {
		return ErrInvalidRateLimit
	}
	if p.Status != nil {
		s := domain.ClientStatus(strings.ToLower(string(*p.Status)))
		switch s {
		case domain.StatusActive, domain.StatusInactive:
			p.Status = &s
		default:
			return ErrInvalidStatus
		}
	}
	return nil
}

func ValidateCredential(credential string) error {
	if strings.TrimSpace(credential) == "" {
		return ErrEmptyCredential
	}
	return nil
}
