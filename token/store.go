package token

// Store is where the issued token pair lives between process restarts -
// the Go analogue of the browser's origin-scoped localStorage. Only the
// auth service writes it.
type Store interface {
	// Save persists both tokens. Callers never observe a partial pair.
	Save(pair Pair) error

	// Clear removes both tokens. Clearing an empty store is not an error.
	Clear() error

	// AccessToken returns the stored access token, or "" when signed out.
	AccessToken() string

	// RefreshToken returns the stored refresh token, or "".
	RefreshToken() string
}
