package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"gorm.io/gorm"
)

type ClientRepo interface {
	Create(ctx context.Context, c *model.Client) error
	Get(ctx context.Context, userID, clientID uuid.UUID) (*model.Client, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Client, error)
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) ClientRepo {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) Get(ctx context.Context, userID, clientID uuid.UUID) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepo) List(ctx context.Context, userID uuid.UUID) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("business_name ASC").
		Find(&clients).Error
	return clients, err
}
