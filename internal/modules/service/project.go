package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
	"github.com/halcyonlabs/studio-api/internal/pkg/types"
)

type ProjectService interface {
	Create(ctx context.Context, p *model.Project) error
	// Update applies a partial update and returns the full saved record.
	Update(ctx context.Context, userID, projectID uuid.UUID, fields map[string]interface{}) (*model.Project, error)
	UpdateNotes(ctx context.Context, userID, projectID uuid.UUID, notes string) error
	Get(ctx context.Context, userID, projectID uuid.UUID) (*model.Project, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
}

type projectService struct{ r repo.ProjectRepo }

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

func (s *projectService) Create(ctx context.Context, p *model.Project) error {
	if p.Name == "" {
		return errors.New("project name is empty")
	}
	if p.UserID == uuid.Nil {
		return errors.New("project owner is empty")
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusPlanning
	}
	if !model.ValidProjectStatus(p.Status) {
		return errors.New("unknown project status: " + p.Status)
	}
	if p.StartDate.IsZero() {
		p.StartDate = types.NewDate(time.Now())
	}
	return s.r.Create(ctx, p)
}

func (s *projectService) Update(ctx context.Context, userID, projectID uuid.UUID, fields map[string]interface{}) (*model.Project, error) {
	if projectID == uuid.Nil {
		return nil, errors.New("project id is empty")
	}
	if status, ok := fields["status"].(string); ok && !model.ValidProjectStatus(status) {
		return nil, errors.New("unknown project status: " + status)
	}
	if err := s.r.UpdateFields(ctx, userID, projectID, fields); err != nil {
		return nil, err
	}
	return s.r.Get(ctx, userID, projectID)
}

func (s *projectService) UpdateNotes(ctx context.Context, userID, projectID uuid.UUID, notes string) error {
	if projectID == uuid.Nil {
		return errors.New("project id is empty")
	}
	return s.r.UpdateNotes(ctx, userID, projectID, notes)
}

func (s *projectService) Get(ctx context.Context, userID, projectID uuid.UUID) (*model.Project, error) {
	if projectID == uuid.Nil {
		return nil, errors.New("project id is empty")
	}
	return s.r.Get(ctx, userID, projectID)
}

func (s *projectService) List(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.r.List(ctx, userID)
}
