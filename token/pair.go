package token

// Pair holds the access and refresh tokens issued by the backend on login.
// Both are opaque bearer strings as far as this client is concerned; only
// the access token's payload segment is ever inspected (see Decode).
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Empty reports whether no access token is present.
func (p Pair) Empty() bool {
	return p.Access == ""
}
