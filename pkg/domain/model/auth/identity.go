package auth

import "github.com/m-mizutani/goerr/v2"

// Identity is an already verified caller. It is produced by an
// Authenticator and carried through the request context.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (x *Identity) Validate() error {
	if x == nil {
		return goerr.New("identity is nil")
	}
	if x.ID == "" {
		return goerr.New("identity has empty ID")
	}
	return nil
}

// DisplayName returns Name, or ID when no name was supplied.
func (x *Identity) DisplayName() string {
	if x.Name != "" {
		return x.Name
	}
	return x.ID
}

// Anonymous is used when authentication is disabled for local development.
var Anonymous = Identity{
	ID:   "anonymous",
	Name: "Anonymous",
}
