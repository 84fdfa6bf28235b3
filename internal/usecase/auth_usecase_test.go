package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "not-an-email", "secret123")
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "ops@oficina.com", "123")
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ops@oficina.com").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Register(context.Background(), " OPS@oficina.com ", "secret123")
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("stores the hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ops@oficina.com").Return(entities.User{}, nil)
		hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.PasswordHash != "hashed" || u.Email != "ops@oficina.com" || u.ID == "" {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		if _, err := uc.Register(context.Background(), "ops@oficina.com", "secret123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ops@oficina.com").Return(entities.User{}, nil)

		_, err := uc.Login(context.Background(), "ops@oficina.com", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, entities.ErrAuth) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(users, hasher, nil)
		users.EXPECT().GetByEmail(gomock.Any(), "ops@oficina.com").Return(entities.User{ID: "u-1", PasswordHash: "h"}, nil)
		hasher.EXPECT().Compare("h", "bad").Return(errors.New("mismatch"))

		_, err := uc.Login(context.Background(), "ops@oficina.com", "bad")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues a token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		identity := mock_interfaces.NewMockIIdentityGateway(ctrl)
		uc := NewAuthUseCase(users, hasher, identity)
		user := entities.User{ID: "u-1", Email: "ops@oficina.com", PasswordHash: "h"}
		exp := time.Now().Add(time.Hour)
		users.EXPECT().GetByEmail(gomock.Any(), "ops@oficina.com").Return(user, nil)
		hasher.EXPECT().Compare("h", "secret123").Return(nil)
		identity.EXPECT().Issue(user, gomock.Any()).Return("jwt", exp, nil)

		s, err := uc.Login(context.Background(), "ops@oficina.com", "secret123")
		if err != nil || s.Token != "jwt" || !s.ExpiresAt.Equal(exp) || s.User.ID != "u-1" {
			t.Fatalf("unexpected session err=%v s=%+v", err, s)
		}
	})
}

func TestAuthUseCase_Verify(t *testing.T) {
	uc := NewAuthUseCase(nil, nil, nil)
	_, err := uc.Verify(context.Background(), "")
	if !errors.Is(err, entities.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
}
