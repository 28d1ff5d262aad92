package domain

import (
	"time"
)

// UserRole represents the role of an account
type UserRole string

const (
	// RolePlayer an account that owns a player profile
	RolePlayer UserRole = "player"

	// RoleKingdomAdmin an account that manages a kingdom listing
	RoleKingdomAdmin UserRole = "kingdom_admin"
)

// User represents an account in the system
type User struct {
	ID        int       `json:"id" gorm:"primaryKey;column:id;type:integer;autoIncrement"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(64)"`
	Password  string    `json:"-" gorm:"not null;type:varchar(128)"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;type:varchar(128)"`
	Role      UserRole  `json:"role" gorm:"type:varchar(16);not null;default:'player'"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// PublicUser is the view of a user returned from registration.
// The password never leaves the service.
type PublicUser struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// Public returns the externally visible view of the user
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id int) (*User, error)
	GetByUsername(username string) (*User, error)
	Create(user *User) error
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	Register(user *User) (*PublicUser, error)
	GetUserInfo(id int) (*User, error)
}
