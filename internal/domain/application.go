package domain

import (
	"time"
)

// ApplicationStatus represents the review state of an application
type ApplicationStatus string

const (
	// ApplicationStatusPending initial state, set at submission
	ApplicationStatusPending ApplicationStatus = "pending"

	// ApplicationStatusAccepted terminal state, kingdom admin approved the migration
	ApplicationStatusAccepted ApplicationStatus = "accepted"

	// ApplicationStatusRejected terminal state, kingdom admin declined the migration
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid reports whether the status is one of the three recognized values
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transition
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Application represents a player's expressed interest in joining a kingdom
type Application struct {
	ID        int               `json:"id" gorm:"primaryKey;column:id;type:integer;autoIncrement"`
	PlayerID  int               `json:"player_id" gorm:"index;not null;type:integer"`
	KingdomID int               `json:"kingdom_id" gorm:"index;not null;type:integer"`
	Status    ApplicationStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	Message   string            `json:"message,omitempty" gorm:"type:text"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null"`

	Player  Player  `json:"-" gorm:"foreignKey:PlayerID"`
	Kingdom Kingdom `json:"-" gorm:"foreignKey:KingdomID"`
}

// TableName specifies the table name for Application
func (a Application) TableName() string {
	return "applications"
}

// ApplicationRepository defines the interface for application data
type ApplicationRepository interface {
	Create(application *Application) error
	GetByID(id int) (*Application, error)
	GetByPlayerID(playerID int) ([]*Application, error)
	GetByKingdomID(kingdomID int) ([]*Application, error)
	UpdateStatus(id int, status ApplicationStatus) error
}

// ApplicationUseCase defines the interface for the application review workflow
type ApplicationUseCase interface {
	Submit(playerID, kingdomID int, message string) (*Application, error)
	ListByPlayer(playerID int) ([]*Application, error)
	ListByKingdom(kingdomID int) ([]*Application, error)
	Decide(id int, status ApplicationStatus) (*Application, error)
}
