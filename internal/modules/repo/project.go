package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, userID, projectID uuid.UUID) (*model.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	// UpdateFields applies a partial update scoped by id and owner. Columns
	// absent from fields are left untouched.
	UpdateFields(ctx context.Context, userID, projectID uuid.UUID, fields map[string]interface{}) error
	UpdateNotes(ctx context.Context, userID, projectID uuid.UUID, notes string) error
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *projectRepo) Get(ctx context.Context, userID, projectID uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND user_id = ?", projectID, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) List(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Preload("Client").
		Where("user_id = ?", userID).
		Order("start_date DESC, created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) UpdateFields(ctx context.Context, userID, projectID uuid.UUID, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("id = ? AND user_id = ?", projectID, userID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) UpdateNotes(ctx context.Context, userID, projectID uuid.UUID, notes string) error {
	return r.UpdateFields(ctx, userID, projectID, map[string]interface{}{"notes": notes})
}
