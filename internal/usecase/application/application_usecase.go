package application

import (
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

// ApplicationUseCase implements domain.ApplicationUseCase, the review
// workflow for player applications to kingdoms.
type ApplicationUseCase struct {
	applicationRepo domain.ApplicationRepository
	playerRepo      domain.PlayerRepository
	kingdomRepo     domain.KingdomRepository
	sanitizer       *bluemonday.Policy
	logger          *logger.Logger
}

// NewApplicationUseCase creates a new application use case
func NewApplicationUseCase(
	applicationRepo domain.ApplicationRepository,
	playerRepo domain.PlayerRepository,
	kingdomRepo domain.KingdomRepository,
	logger *logger.Logger,
) domain.ApplicationUseCase {
	return &ApplicationUseCase{
		applicationRepo: applicationRepo,
		playerRepo:      playerRepo,
		kingdomRepo:     kingdomRepo,
		sanitizer:       bluemonday.StrictPolicy(),
		logger:          logger,
	}
}

// Submit creates a new application in the pending state. The
// referenced player and kingdom must exist; missing references are
// rejected before the insert in addition to the FK constraints.
func (uc *ApplicationUseCase) Submit(playerID, kingdomID int, message string) (*domain.Application, error) {
	uc.logger.Info("Submitting application",
		zap.Int("player_id", playerID),
		zap.Int("kingdom_id", kingdomID))

	if playerID <= 0 {
		return nil, domain.NewValidationError("player_id", "must be a positive integer")
	}
	if kingdomID <= 0 {
		return nil, domain.NewValidationError("kingdom_id", "must be a positive integer")
	}

	player, err := uc.playerRepo.GetByID(playerID)
	if err != nil {
		uc.logger.Error("Failed to load player for application",
			zap.Int("player_id", playerID), zap.Error(err))
		return nil, domain.NewStoreError("fetch player", err)
	}
	if player == nil {
		return nil, domain.NewValidationError("player_id", "referenced player does not exist")
	}

	kingdom, err := uc.kingdomRepo.GetByID(kingdomID)
	if err != nil {
		uc.logger.Error("Failed to load kingdom for application",
			zap.Int("kingdom_id", kingdomID), zap.Error(err))
		return nil, domain.NewStoreError("fetch kingdom", err)
	}
	if kingdom == nil {
		return nil, domain.NewValidationError("kingdom_id", "referenced kingdom does not exist")
	}

	application := &domain.Application{
		PlayerID:  playerID,
		KingdomID: kingdomID,
		Status:    domain.ApplicationStatusPending,
		Message:   uc.sanitizer.Sanitize(message),
		CreatedAt: time.Now(),
	}

	if err := uc.applicationRepo.Create(application); err != nil {
		uc.logger.Error("Failed to create application",
			zap.Int("player_id", playerID),
			zap.Int("kingdom_id", kingdomID),
			zap.Error(err))
		return nil, domain.NewStoreError("create application", err)
	}

	uc.logger.Info("Application submitted",
		zap.Int("application_id", application.ID),
		zap.Int("player_id", playerID),
		zap.Int("kingdom_id", kingdomID))

	return application, nil
}

// ListByPlayer returns all applications submitted by a player
func (uc *ApplicationUseCase) ListByPlayer(playerID int) ([]*domain.Application, error) {
	applications, err := uc.applicationRepo.GetByPlayerID(playerID)
	if err != nil {
		uc.logger.Error("Failed to list applications by player",
			zap.Int("player_id", playerID), zap.Error(err))
		return nil, domain.NewStoreError("fetch applications", err)
	}
	return applications, nil
}

// ListByKingdom returns all applications received by a kingdom
func (uc *ApplicationUseCase) ListByKingdom(kingdomID int) ([]*domain.Application, error) {
	applications, err := uc.applicationRepo.GetByKingdomID(kingdomID)
	if err != nil {
		uc.logger.Error("Failed to list applications by kingdom",
			zap.Int("kingdom_id", kingdomID), zap.Error(err))
		return nil, domain.NewStoreError("fetch applications", err)
	}
	return applications, nil
}

// Decide moves a pending application to a new status. Only pending
// applications may transition; accepted and rejected are terminal.
func (uc *ApplicationUseCase) Decide(id int, status domain.ApplicationStatus) (*domain.Application, error) {
	uc.logger.Info("Deciding application",
		zap.Int("application_id", id),
		zap.String("status", string(status)))

	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of pending, accepted, rejected")
	}

	application, err := uc.applicationRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to load application",
			zap.Int("application_id", id), zap.Error(err))
		return nil, domain.NewStoreError("fetch application", err)
	}
	if application == nil {
		return nil, domain.NewAppError(domain.ErrCodeApplicationNotFound, "Application not found", 404, nil)
	}

	if application.Status.IsTerminal() {
		return nil, domain.NewAppError(
			domain.ErrCodeApplicationInvalidStatus,
			fmt.Sprintf("Application is already %s", application.Status),
			400,
			nil,
		)
	}

	if err := uc.applicationRepo.UpdateStatus(id, status); err != nil {
		uc.logger.Error("Failed to update application status",
			zap.Int("application_id", id),
			zap.String("status", string(status)),
			zap.Error(err))
		return nil, domain.NewStoreError("update application status", err)
	}

	application.Status = status

	uc.logger.Info("Application decided",
		zap.Int("application_id", id),
		zap.String("status", string(status)))

	return application, nil
}
