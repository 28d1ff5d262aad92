package kingdom

import (
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

// KingdomUseCase implements domain.KingdomUseCase
type KingdomUseCase struct {
	kingdomRepo domain.KingdomRepository
	sanitizer   *bluemonday.Policy
	logger      *logger.Logger
}

// NewKingdomUseCase creates a new kingdom use case
func NewKingdomUseCase(kingdomRepo domain.KingdomRepository, logger *logger.Logger) domain.KingdomUseCase {
	return &KingdomUseCase{
		kingdomRepo: kingdomRepo,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger,
	}
}

// List returns the kingdoms matching the filter. The whole collection
// is loaded and filtered in memory; an empty filter returns everything.
func (uc *KingdomUseCase) List(filter domain.KingdomFilter) ([]*domain.Kingdom, error) {
	kingdoms, err := uc.kingdomRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to list kingdoms", zap.Error(err))
		return nil, domain.NewStoreError("fetch kingdoms", err)
	}
	return domain.FilterKingdoms(kingdoms, filter), nil
}

// Facets derives the selectable filter options from the current
// collection.
func (uc *KingdomUseCase) Facets() (*domain.KingdomFacetOptions, error) {
	kingdoms, err := uc.kingdomRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to load kingdoms for facets", zap.Error(err))
		return nil, domain.NewStoreError("fetch kingdoms", err)
	}
	return domain.KingdomFacets(kingdoms), nil
}

// GetByID retrieves a kingdom listing by id
func (uc *KingdomUseCase) GetByID(id int) (*domain.Kingdom, error) {
	kingdom, err := uc.kingdomRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get kingdom", zap.Int("kingdom_id", id), zap.Error(err))
		return nil, domain.NewStoreError("fetch kingdom", err)
	}
	if kingdom == nil {
		return nil, domain.NewAppError(domain.ErrCodeKingdomNotFound, "Kingdom not found", 404, nil)
	}
	return kingdom, nil
}

// GetByUserID retrieves the kingdom listing owned by an account
func (uc *KingdomUseCase) GetByUserID(userID int) (*domain.Kingdom, error) {
	kingdom, err := uc.kingdomRepo.GetByUserID(userID)
	if err != nil {
		uc.logger.Error("Failed to get kingdom by user", zap.Int("user_id", userID), zap.Error(err))
		return nil, domain.NewStoreError("fetch kingdom", err)
	}
	if kingdom == nil {
		return nil, domain.NewAppError(domain.ErrCodeKingdomNotFound, "Kingdom not found", 404, nil)
	}
	return kingdom, nil
}

// Create persists a new kingdom listing after checking the kingdom
// number is not already listed.
func (uc *KingdomUseCase) Create(kingdom *domain.Kingdom) (*domain.Kingdom, error) {
	existing, err := uc.kingdomRepo.GetByNumber(kingdom.KingdomNumber)
	if err != nil {
		uc.logger.Error("Failed to check kingdom number",
			zap.String("kingdom_number", kingdom.KingdomNumber), zap.Error(err))
		return nil, domain.NewStoreError("check kingdom number", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError(domain.ErrCodeKingdomNumberTaken, "Kingdom number already listed")
	}

	kingdom.Description = uc.sanitizer.Sanitize(kingdom.Description)
	kingdom.Requirements = uc.sanitizer.Sanitize(kingdom.Requirements)

	if err := uc.kingdomRepo.Create(kingdom); err != nil {
		uc.logger.Error("Failed to create kingdom",
			zap.Int("user_id", kingdom.UserID),
			zap.String("kingdom_number", kingdom.KingdomNumber),
			zap.Error(err))
		return nil, domain.NewStoreError("create kingdom", err)
	}

	uc.logger.Info("Kingdom created",
		zap.Int("kingdom_id", kingdom.ID),
		zap.String("kingdom_number", kingdom.KingdomNumber))

	return kingdom, nil
}

// Update applies a partial update to a kingdom listing
func (uc *KingdomUseCase) Update(id int, update domain.KingdomUpdate) (*domain.Kingdom, error) {
	kingdom, err := uc.kingdomRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to load kingdom for update", zap.Int("kingdom_id", id), zap.Error(err))
		return nil, domain.NewStoreError("fetch kingdom", err)
	}
	if kingdom == nil {
		return nil, domain.NewAppError(domain.ErrCodeKingdomNotFound, "Kingdom not found", 404, nil)
	}

	applyKingdomUpdate(kingdom, update, uc.sanitizer)

	if err := uc.kingdomRepo.Update(kingdom); err != nil {
		uc.logger.Error("Failed to update kingdom", zap.Int("kingdom_id", id), zap.Error(err))
		return nil, domain.NewStoreError("update kingdom", err)
	}

	uc.logger.Info("Kingdom updated", zap.Int("kingdom_id", id))
	return kingdom, nil
}

// applyKingdomUpdate copies the non-nil fields of the update onto the
// kingdom record. The kingdom number is immutable once listed.
func applyKingdomUpdate(kingdom *domain.Kingdom, update domain.KingdomUpdate, sanitizer *bluemonday.Policy) {
	if update.KingdomName != nil {
		kingdom.KingdomName = *update.KingdomName
	}
	if update.Seed != nil {
		kingdom.Seed = *update.Seed
	}
	if update.AveragePower != nil {
		kingdom.AveragePower = *update.AveragePower
	}
	if update.KvkSeason != nil {
		kingdom.KvkSeason = *update.KvkSeason
	}
	if update.MinimumPower != nil {
		kingdom.MinimumPower = *update.MinimumPower
	}
	if update.Status != nil {
		kingdom.Status = *update.Status
	}
	if update.KingdomType != nil {
		kingdom.KingdomType = *update.KingdomType
	}
	if update.Languages != nil {
		kingdom.Languages = *update.Languages
	}
	if update.BannerImageURL != nil {
		kingdom.BannerImageURL = *update.BannerImageURL
	}
	if update.Description != nil {
		kingdom.Description = sanitizer.Sanitize(*update.Description)
	}
	if update.Requirements != nil {
		kingdom.Requirements = sanitizer.Sanitize(*update.Requirements)
	}
}
