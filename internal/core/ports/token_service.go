package ports

// TokenClaims are the identity claims embedded in a bearer token.
type TokenClaims struct {
	UserID string
	Role   string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Tokens are stateless; nothing is persisted server-side.
type TokenService interface {
	// Issue signs a token carrying the user id and role, expiring after the
	// service's configured TTL.
	Issue(userID, role string) (string, error)
	// Verify checks the signature and expiry. It fails with
	// domain.ErrTokenExpired for stale tokens and domain.ErrTokenInvalid for
	// anything else that does not parse or verify.
	Verify(token string) (TokenClaims, error)
}
