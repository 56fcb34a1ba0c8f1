package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"construction_estimation/internal/domain/entities"
	mock_interfaces "construction_estimation/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClientUseCase_List(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("sorted by name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Client{
			{ID: "2", Name: "Zeta Builders"},
			{ID: "1", Name: "Acme Construction"},
		}, nil)

		res, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].Name != "Acme Construction" || res[1].Name != "Zeta Builders" {
			t.Fatalf("unexpected order: %+v", res)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Client{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Client{ID: "id-1", Name: "Smith Residence"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Smith Residence" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestClientUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{Email: "a@b.com"})
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "Acme"})
		if !errors.Is(err, ErrInvalidClientInput) {
			t.Fatalf("expected ErrInvalidClientInput, got %v", err)
		}
	})

	t.Run("success assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Name != "Acme" || c.Email != "a@b.com" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CreatedAt.IsZero() || !c.CreatedAt.Equal(c.UpdatedAt) {
					t.Fatalf("expected matching timestamps, got %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Client{Name: " Acme ", Email: " a@b.com "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), entities.Client{ID: "id-1", Name: "New"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("preserves created at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Client{ID: "id-1", Name: "Old", CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.Name != "New" || !c.CreatedAt.Equal(created) {
					t.Fatalf("unexpected client: %+v", c)
				}
				if !c.UpdatedAt.After(created) {
					t.Fatalf("expected refreshed UpdatedAt, got %v", c.UpdatedAt)
				}
				return c, nil
			},
		)

		res, err := uc.Update(context.Background(), entities.Client{ID: "id-1", Name: "New", Email: "n@b.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "New" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Client{}, nil)

		err := uc.Delete(context.Background(), "id-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.Client{ID: "id-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(nil)

		if err := uc.Delete(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
