package auth

// Gate validates the shared admin secret on mutating requests.
// It is a pure predicate: no sessions, no expiry, no hashing.
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authorize reports whether candidate matches the configured secret.
// An empty candidate never authorizes, even if the secret is empty.
func (g *Gate) Authorize(candidate string) bool {
	if candidate == "" {
		return false
	}
	return candidate == g.secret
}
