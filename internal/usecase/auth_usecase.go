package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const minPasswordLength = 6

// Session is the outcome of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

// IAuthUseCase registers operators and exchanges credentials for identity tokens.
type IAuthUseCase interface {
	Register(ctx context.Context, email, password string) (entities.User, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Verify(ctx context.Context, token string) (entities.Identity, error)
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	hasher   interfaces.IPasswordHasher
	identity interfaces.IIdentityGateway
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, hasher interfaces.IPasswordHasher, identity interfaces.IIdentityGateway) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, identity: identity}
}

func (u *AuthUseCase) Register(ctx context.Context, email, password string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.User{}, entities.Validationf("invalid email")
	}
	if len(password) < minPasswordLength {
		return entities.User{}, entities.Validationf("password must have at least %d characters", minPasswordLength)
	}
	if existing, err := u.users.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.User{}, err
	}
	created, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return entities.User{}, err
	}
	log.Info().Str("user_id", created.ID).Msg("[auth][usecase] registered")
	return created, nil
}

// Login never tells apart an unknown email from a wrong password.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if user.ID == "" {
		return Session{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, exp, err := u.identity.Issue(user, time.Now().UTC())
	if err != nil {
		return Session{}, err
	}
	log.Info().Str("user_id", user.ID).Msg("[auth][usecase] login")
	return Session{Token: token, ExpiresAt: exp, User: user}, nil
}

func (u *AuthUseCase) Verify(_ context.Context, token string) (entities.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Identity{}, entities.NewError(entities.ErrAuth, "MISSING_TOKEN", "missing token")
	}
	return u.identity.Verify(token)
}
