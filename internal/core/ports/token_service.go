package ports

// Identity is the authenticated principal carried by a validated token.
type Identity struct {
	Username string
	Role     string
}

// TokenService issues and validates signed session tokens. Validate maps
// failures onto the token sentinel errors in domain so callers can
// distinguish expiry, tampering and garbage in logs while still returning
// a single unauthorized response to clients.
type TokenService interface {
	Issue(username, role string) (string, error)
	Validate(token string) (*Identity, error)
}
