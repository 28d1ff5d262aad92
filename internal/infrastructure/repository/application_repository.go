package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// ApplicationRepository implements domain.ApplicationRepository
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) domain.ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create creates a new application
func (r *ApplicationRepository) Create(application *domain.Application) error {
	if application.CreatedAt.IsZero() {
		application.CreatedAt = time.Now()
	}
	return r.db.Create(application).Error
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(id int) (*domain.Application, error) {
	var application domain.Application
	result := r.db.Where("id = ?", id).First(&application)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &application, nil
}

// GetByPlayerID retrieves all applications submitted by a player
func (r *ApplicationRepository) GetByPlayerID(playerID int) ([]*domain.Application, error) {
	var applications []*domain.Application
	result := r.db.Where("player_id = ?", playerID).Order("id ASC").Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

// GetByKingdomID retrieves all applications received by a kingdom
func (r *ApplicationRepository) GetByKingdomID(kingdomID int) ([]*domain.Application, error) {
	var applications []*domain.Application
	result := r.db.Where("kingdom_id = ?", kingdomID).Order("id ASC").Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}
	return applications, nil
}

// UpdateStatus updates only the status of an application
func (r *ApplicationRepository) UpdateStatus(id int, status domain.ApplicationStatus) error {
	return r.db.Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}
