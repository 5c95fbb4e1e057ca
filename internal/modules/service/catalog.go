package service

import (
	"context"

	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/repo"
)

type CatalogService interface {
	List(ctx context.Context) ([]model.ServiceOffering, error)
	// Seed inserts the default catalog when the table is empty.
	Seed(ctx context.Context) error
}

type catalogService struct{ r repo.CatalogRepo }

func NewCatalogService(r repo.CatalogRepo) CatalogService {
	return &catalogService{r: r}
}

func (s *catalogService) List(ctx context.Context) ([]model.ServiceOffering, error) {
	return s.r.List(ctx)
}

func (s *catalogService) Seed(ctx context.Context) error {
	n, err := s.r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.r.CreateBatch(ctx, defaultCatalog())
}

func defaultCatalog() []model.ServiceOffering {
	return []model.ServiceOffering{
		{Category: "Strategic Leadership", Name: "Outsourced CTO", Description: "Strategic technology leadership, architecture decisions, and roadmap development", Icon: "briefcase", Sort: 1},
		{Category: "Strategic Leadership", Name: "Tech Stack Administration", Description: "System architecture maintenance, performance optimization, and infrastructure scaling", Icon: "server", Sort: 2},
		{Category: "Development Services", Name: "Software Development", Description: "Full-stack development, custom solutions, and application maintenance", Icon: "code", Sort: 1},
		{Category: "Development Services", Name: "Web & App Development", Description: "Responsive web applications and mobile app development", Icon: "globe", Sort: 2},
		{Category: "Development Services", Name: "Backend Development", Description: "Server-side architecture, database design, and API development", Icon: "database", Sort: 3},
		{Category: "User Experience & Design", Name: "UI/UX Design", Description: "User interface design, user experience optimization, and usability testing", Icon: "layout", Sort: 1},
		{Category: "User Experience & Design", Name: "Customer Experience (CX)", Description: "Customer journey mapping, touchpoint optimization, and experience refinement", Icon: "smartphone", Sort: 2},
		{Category: "Quality & Operations", Name: "Application QA", Description: "Quality assurance, testing automation, and performance optimization", Icon: "shield", Sort: 1},
		{Category: "Quality & Operations", Name: "Day-to-Day Operations", Description: "System maintenance, troubleshooting, and administrative support", Icon: "wrench", Sort: 2},
		{Category: "Specialized Solutions", Name: "No-Code Development", Description: "Platform selection, workflow automation, and integration setup", Icon: "boxes", Sort: 1},
		{Category: "Specialized Solutions", Name: "App Prototyping", Description: "Rapid prototyping, MVP development, and proof of concept", Icon: "gauge", Sort: 2},
		{Category: "Integration & Support", Name: "System Integration", Description: "Third-party API integration, migrations, and upgrades", Icon: "clock", Sort: 1},
		{Category: "Integration & Support", Name: "Project Management", Description: "Project planning, resource allocation, and timeline management", Icon: "database", Sort: 2},
	}
}
