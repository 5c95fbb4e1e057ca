package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/pkg/types"
)

// Project statuses. Status is stored as text so historical rows with retired
// labels keep loading; writes are validated against this set.
const (
	ProjectStatusPlanning   = "Planning"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusOnHold     = "On Hold"
)

func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusOnHold:
		return true
	}
	return false
}

type Project struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index" json:"client_id"`
	StartDate types.Date `gorm:"not null" json:"start_date"`
	Status    string     `gorm:"type:varchar(32);not null;default:'Planning'" json:"status"`

	URL      *string `gorm:"type:text" json:"url"`
	Image    *string `gorm:"type:text" json:"image"`
	Industry *string `gorm:"type:varchar(255)" json:"industry"`

	IsActive    bool `gorm:"not null;default:true" json:"is_active"`
	IsPortfolio bool `gorm:"not null;default:false" json:"is_portfolio"`

	// Free-form rich-text markup, saved independently of the rest of the
	// record through the notes autosave path.
	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Project <-> Client
	Client *Client `gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"client,omitempty"`
}

func (Project) TableName() string { return "projects" }
