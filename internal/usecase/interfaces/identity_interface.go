package interfaces

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

//go:generate mockgen -source=identity_interface.go -destination=mocks/identity_interface_mock.go -package=mock_interfaces

// IIdentityGateway issues and verifies caller identity tokens.
// Verify fails with an error matching entities.ErrAuth.
type IIdentityGateway interface {
	Issue(user entities.User, now time.Time) (token string, expiresAt time.Time, err error)
	Verify(token string) (entities.Identity, error)
}

// IPasswordHasher hides the password hashing scheme.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
