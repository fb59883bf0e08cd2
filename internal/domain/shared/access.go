package shared

// AccessContext carries the caller's credentials through services and
// repositories. It is resolved once per request by the auth middleware and
// passed explicitly; there is no hidden per-request global.
type AccessContext struct {
	// Token is the raw bearer token presented by the caller. For tenant
	// callers it doubles as the ownership key stored on their resources.
	Token string
	// Admin is true when the token matched the configured admin token.
	// Admin access sees every tenant's resources.
	Admin bool
}
