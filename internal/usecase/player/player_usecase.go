package player

import (
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

// PlayerUseCase implements domain.PlayerUseCase
type PlayerUseCase struct {
	playerRepo domain.PlayerRepository
	sanitizer  *bluemonday.Policy
	logger     *logger.Logger
}

// NewPlayerUseCase creates a new player use case
func NewPlayerUseCase(playerRepo domain.PlayerRepository, logger *logger.Logger) domain.PlayerUseCase {
	return &PlayerUseCase{
		playerRepo: playerRepo,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     logger,
	}
}

// List returns the players matching the filter. The whole collection
// is loaded and filtered in memory; an empty filter returns everything.
func (uc *PlayerUseCase) List(filter domain.PlayerFilter) ([]*domain.Player, error) {
	players, err := uc.playerRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to list players", zap.Error(err))
		return nil, domain.NewStoreError("fetch players", err)
	}
	return domain.FilterPlayers(players, filter), nil
}

// Facets derives the selectable filter options from the current
// collection.
func (uc *PlayerUseCase) Facets() (*domain.PlayerFacetOptions, error) {
	players, err := uc.playerRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to load players for facets", zap.Error(err))
		return nil, domain.NewStoreError("fetch players", err)
	}
	return domain.PlayerFacets(players), nil
}

// GetByID retrieves a player profile by id
func (uc *PlayerUseCase) GetByID(id int) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get player", zap.Int("player_id", id), zap.Error(err))
		return nil, domain.NewStoreError("fetch player", err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// GetByUserID retrieves the player profile owned by an account
func (uc *PlayerUseCase) GetByUserID(userID int) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByUserID(userID)
	if err != nil {
		uc.logger.Error("Failed to get player by user", zap.Int("user_id", userID), zap.Error(err))
		return nil, domain.NewStoreError("fetch player", err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}
	return player, nil
}

// Create persists a new player profile
func (uc *PlayerUseCase) Create(player *domain.Player) (*domain.Player, error) {
	player.AdditionalInfo = uc.sanitizer.Sanitize(player.AdditionalInfo)

	if err := uc.playerRepo.Create(player); err != nil {
		uc.logger.Error("Failed to create player",
			zap.Int("user_id", player.UserID),
			zap.String("in_game_name", player.InGameName),
			zap.Error(err))
		return nil, domain.NewStoreError("create player", err)
	}

	uc.logger.Info("Player created",
		zap.Int("player_id", player.ID),
		zap.Int("user_id", player.UserID))

	return player, nil
}

// Update applies a partial update to a player profile
func (uc *PlayerUseCase) Update(id int, update domain.PlayerUpdate) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to load player for update", zap.Int("player_id", id), zap.Error(err))
		return nil, domain.NewStoreError("fetch player", err)
	}
	if player == nil {
		return nil, domain.NewAppError(domain.ErrCodePlayerNotFound, "Player not found", 404, nil)
	}

	applyPlayerUpdate(player, update, uc.sanitizer)

	if err := uc.playerRepo.Update(player); err != nil {
		uc.logger.Error("Failed to update player", zap.Int("player_id", id), zap.Error(err))
		return nil, domain.NewStoreError("update player", err)
	}

	uc.logger.Info("Player updated", zap.Int("player_id", id))
	return player, nil
}

// applyPlayerUpdate copies the non-nil fields of the update onto the
// player record.
func applyPlayerUpdate(player *domain.Player, update domain.PlayerUpdate, sanitizer *bluemonday.Policy) {
	if update.InGameName != nil {
		player.InGameName = *update.InGameName
	}
	if update.GameID != nil {
		player.GameID = *update.GameID
	}
	if update.Power != nil {
		player.Power = *update.Power
	}
	if update.KillPoints != nil {
		player.KillPoints = *update.KillPoints
	}
	if update.DeadTroops != nil {
		player.DeadTroops = *update.DeadTroops
	}
	if update.VIPLevel != nil {
		player.VIPLevel = *update.VIPLevel
	}
	if update.HasTier5 != nil {
		player.HasTier5 = *update.HasTier5
	}
	if update.MainTroopType != nil {
		player.MainTroopType = *update.MainTroopType
	}
	if update.PlayStyle != nil {
		player.PlayStyle = *update.PlayStyle
	}
	if update.Languages != nil {
		player.Languages = *update.Languages
	}
	if update.ProfileImageURL != nil {
		player.ProfileImageURL = *update.ProfileImageURL
	}
	if update.Available != nil {
		player.Available = *update.Available
	}
	if update.AdditionalInfo != nil {
		player.AdditionalInfo = sanitizer.Sanitize(*update.AdditionalInfo)
	}
}
