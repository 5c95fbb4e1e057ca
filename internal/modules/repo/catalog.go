package repo

import (
	"context"

	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"gorm.io/gorm"
)

type CatalogRepo interface {
	List(ctx context.Context) ([]model.ServiceOffering, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, offerings []model.ServiceOffering) error
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) List(ctx context.Context) ([]model.ServiceOffering, error) {
	var offerings []model.ServiceOffering
	err := r.db.WithContext(ctx).
		Order("category ASC, sort ASC, name ASC").
		Find(&offerings).Error
	return offerings, err
}

func (r *catalogRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ServiceOffering{}).Count(&n).Error
	return n, err
}

func (r *catalogRepo) CreateBatch(ctx context.Context, offerings []model.ServiceOffering) error {
	if len(offerings) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&offerings).Error
}
