package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCompanyUseCase_SaveCompanyInfo(t *testing.T) {
	t.Run("normalizes and saves under the profile key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		uc := NewCompanyUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.CompanyInfo) (entities.CompanyInfo, error) {
				if c.ID != entities.CompanyProfileID {
					t.Fatalf("expected profile id %q, got %q", entities.CompanyProfileID, c.ID)
				}
				if c.Name != "Oficina XPTO" || c.TaxID != "12345678000199" {
					t.Fatalf("unexpected profile: %+v", c)
				}
				return c, nil
			},
		)

		got, err := uc.SaveCompanyInfo(context.Background(), entities.CompanyInfo{
			ID: "ignored", Name: "  Oficina XPTO ", TaxID: "12.345.678/0001-99",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != entities.CompanyProfileID {
			t.Fatalf("expected profile id, got %q", got.ID)
		}
	})

	t.Run("name is required", func(t *testing.T) {
		uc := NewCompanyUseCase(nil)
		_, err := uc.SaveCompanyInfo(context.Background(), entities.CompanyInfo{Name: " "})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		uc := NewCompanyUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.CompanyInfo{}, errors.New("db"))

		if _, err := uc.SaveCompanyInfo(context.Background(), entities.CompanyInfo{Name: "Oficina"}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCompanyUseCase_GetCompanyInfo(t *testing.T) {
	t.Run("not saved yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		uc := NewCompanyUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.CompanyInfo{}, nil)

		if _, err := uc.GetCompanyInfo(context.Background()); !errors.Is(err, ErrCompanyNotFound) {
			t.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})

	t.Run("saved profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICompanyRepository(ctrl)
		uc := NewCompanyUseCase(repo)

		repo.EXPECT().Get(gomock.Any()).Return(entities.CompanyInfo{ID: entities.CompanyProfileID, Name: "Oficina"}, nil)

		got, err := uc.GetCompanyInfo(context.Background())
		if err != nil || got.Name != "Oficina" {
			t.Fatalf("unexpected result err=%v got=%+v", err, got)
		}
	})
}
