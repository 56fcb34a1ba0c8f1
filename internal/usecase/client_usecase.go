package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"construction_estimation/internal/domain/entities"
	"construction_estimation/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientInput = errors.New("invalid client input")
)

// IClientUseCase exposes client record operations shared by the REST API
// and the tool server.
type IClientUseCase interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List returns all clients ordered by name ascending.
func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	clients, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].Name < clients[j].Name
	})
	return clients, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" || c.Email == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

// Update replaces the mutable fields of an existing client. Identity and
// CreatedAt are preserved.
func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	existing, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}

	existing.Name = c.Name
	existing.Email = c.Email
	existing.Phone = c.Phone
	existing.Address = c.Address
	existing.City = c.City
	existing.State = c.State
	existing.ZipCode = c.ZipCode
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
