package interfaces

import "agenda_facil/internal/domain/entities"

// IPasswordHasher hashes and verifies operator passwords.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ITokenIssuer issues and verifies access tokens.
type ITokenIssuer interface {
	Issue(u entities.User) (token string, claims entities.AuthClaims, err error)
	Verify(token string) (entities.AuthClaims, error)
}
