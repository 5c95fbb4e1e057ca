package repo

import (
	"context"

	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"gorm.io/gorm"
)

type ContactRepo interface {
	Create(ctx context.Context, m *model.ContactMessage) error
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepo(db *gorm.DB) ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, m *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}
