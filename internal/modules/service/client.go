package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
)

type ClientService interface {
	Create(ctx context.Context, c *model.Client) error
	List(ctx context.Context, userID uuid.UUID) ([]model.Client, error)
}

type clientService struct{ r repo.ClientRepo }

func NewClientService(r repo.ClientRepo) ClientService {
	return &clientService{r: r}
}

func (s *clientService) Create(ctx context.Context, c *model.Client) error {
	if c.BusinessName == "" {
		return errors.New("business name is empty")
	}
	return s.r.Create(ctx, c)
}

func (s *clientService) List(ctx context.Context, userID uuid.UUID) ([]model.Client, error) {
	return s.r.List(ctx, userID)
}
