package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// KingdomRepository implements domain.KingdomRepository
type KingdomRepository struct {
	db *gorm.DB
}

// NewKingdomRepository creates a new kingdom repository
func NewKingdomRepository(db *gorm.DB) domain.KingdomRepository {
	return &KingdomRepository{db: db}
}

// GetAll retrieves all kingdom listings in natural storage order
func (r *KingdomRepository) GetAll() ([]*domain.Kingdom, error) {
	var kingdoms []*domain.Kingdom
	result := r.db.Order("id ASC").Find(&kingdoms)
	if result.Error != nil {
		return nil, result.Error
	}
	return kingdoms, nil
}

// GetByID retrieves a kingdom by ID
func (r *KingdomRepository) GetByID(id int) (*domain.Kingdom, error) {
	var kingdom domain.Kingdom
	result := r.db.Where("id = ?", id).First(&kingdom)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &kingdom, nil
}

// GetByUserID retrieves the kingdom listing owned by a user
func (r *KingdomRepository) GetByUserID(userID int) (*domain.Kingdom, error) {
	var kingdom domain.Kingdom
	result := r.db.Where("user_id = ?", userID).First(&kingdom)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &kingdom, nil
}

// GetByNumber retrieves a kingdom by its unique kingdom number
func (r *KingdomRepository) GetByNumber(kingdomNumber string) (*domain.Kingdom, error) {
	var kingdom domain.Kingdom
	result := r.db.Where("kingdom_number = ?", kingdomNumber).First(&kingdom)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &kingdom, nil
}

// Create creates a new kingdom listing
func (r *KingdomRepository) Create(kingdom *domain.Kingdom) error {
	return r.db.Create(kingdom).Error
}

// Update updates an existing kingdom listing
func (r *KingdomRepository) Update(kingdom *domain.Kingdom) error {
	return r.db.Save(kingdom).Error
}
