package auth

// Identity is the acting caller of a catalog operation. It is always
// passed explicitly rather than read from ambient session state, so
// authorization stays testable without a live login.
type Identity struct {
	UserID int64
	Email  string
	Admin  bool
}

// Anonymous returns the identity of an unauthenticated caller.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated reports whether the identity belongs to a logged-in user.
func (id Identity) Authenticated() bool {
	return id.UserID != 0
}

// Authorized reports whether the identity may mutate the catalog: it must
// be authenticated and carry the admin flag. A negative answer is a normal
// outcome, never an error.
func Authorized(id Identity) bool {
	return id.Authenticated() && id.Admin
}

// FromClaims builds the identity carried by a validated token.
func FromClaims(c *Claims) Identity {
	if c == nil {
		return Anonymous()
	}
	return Identity{UserID: c.UserID, Email: c.Email, Admin: c.Admin}
}
