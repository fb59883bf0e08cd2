package auth

import (
	"strings"

	"github.com/petshop/backend/internal/domain/shared"
)

// Common errors
var (
	ErrMissingAuthHeader = shared.NewDomainError("UNAUTHORIZED", "Missing Authorization header")
	ErrMalformedHeader   = shared.NewDomainError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'")
	ErrUnknownToken      = shared.NewDomainError("UNAUTHORIZED", "Unknown token")
)

// TokenRegistry resolves bearer tokens against the statically configured
// admin token and tenant tokens. There is no user database; a token is the
// whole identity.
type TokenRegistry struct {
	adminToken   string
	tenantTokens []string
}

// NewTokenRegistry creates a token registry from configured tokens
func NewTokenRegistry(adminToken string, tenantTokens []string) *TokenRegistry {
	return &TokenRegistry{
		adminToken:   adminToken,
		tenantTokens: tenantTokens,
	}
}

// IsAdmin reports whether the token is the admin token. The comparison is
// exact, unlike tenant matching which ignores case.
func (r *TokenRegistry) IsAdmin(token string) bool {
	return r.adminToken != "" && token == r.adminToken
}

// IsTenant reports whether the token matches a configured tenant token,
// ignoring case
func (r *TokenRegistry) IsTenant(token string) bool {
	for _, t := range r.tenantTokens {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}

// IsValid reports whether the token is either the admin token or a tenant token
func (r *TokenRegistry) IsValid(token string) bool {
	return r.IsAdmin(token) || r.IsTenant(token)
}

// Resolve validates a raw token and returns the caller's access context.
// Tenant tokens are canonicalized to their configured spelling so that
// ownership comparisons against stored rows stay exact.
func (r *TokenRegistry) Resolve(token string) (shared.AccessContext, error) {
	if r.IsAdmin(token) {
		return shared.AccessContext{Token: token, Admin: true}, nil
	}
	for _, t := range r.tenantTokens {
		if strings.EqualFold(t, token) {
			return shared.AccessContext{Token: t}, nil
		}
	}
	return shared.AccessContext{}, ErrUnknownToken
}

// Authorize reports whether the caller may touch a resource owned by
// ownerToken: admins always, tenants only their own
func Authorize(ownerToken string, access shared.AccessContext) bool {
	return access.Admin || access.Token == ownerToken
}

// BearerToken extracts the raw token from an Authorization header value
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingAuthHeader
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrMalformedHeader
	}
	return parts[1], nil
}
