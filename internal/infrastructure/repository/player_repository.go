package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetAll retrieves all player profiles in natural storage order
func (r *PlayerRepository) GetAll() ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.Order("id ASC").Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", id).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByUserID retrieves the player profile owned by a user
func (r *PlayerRepository) GetByUserID(userID int) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("user_id = ?", userID).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// Create creates a new player profile
func (r *PlayerRepository) Create(player *domain.Player) error {
	return r.db.Create(player).Error
}

// Update updates an existing player profile
func (r *PlayerRepository) Update(player *domain.Player) error {
	return r.db.Save(player).Error
}
