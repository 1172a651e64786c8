package model

// Scope identifies the caller of a use case.
type Scope struct {
	// Token is the caller's backend bearer token, forwarded as-is.
	// Empty for anonymous callers.
	Token     string
	RequestID string
	ClientIP  string
}

// Authenticated reports whether the caller presented a token.
func (sc Scope) Authenticated() bool {
	return sc.Token != ""
}
