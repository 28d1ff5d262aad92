package player

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/domain/mocks"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

func newTestUseCase(ctrl *gomock.Controller) (*PlayerUseCase, *mocks.MockPlayerRepository) {
	mockPlayerRepo := mocks.NewMockPlayerRepository(ctrl)
	newLogger := logger.NewLogger("test", "debug")

	useCase := &PlayerUseCase{
		playerRepo: mockPlayerRepo,
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     newLogger,
	}
	return useCase, mockPlayerRepo
}

func createTestPlayer() *domain.Player {
	return &domain.Player{
		ID:            1,
		UserID:        4,
		InGameName:    "AthenaWarrior",
		GameID:        "19384756",
		Power:         78500000,
		MainTroopType: "Infantry",
		PlayStyle:     "Rally Leader",
		Languages:     "English",
		Available:     true,
	}
}

func TestCreatePlayerSanitizesAdditionalInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockPlayerRepo := newTestUseCase(ctrl)

	mockPlayerRepo.EXPECT().Create(gomock.Any()).Return(nil)

	player := createTestPlayer()
	player.AdditionalInfo = `<a href="javascript:alert(1)">active daily</a>`
	created, err := useCase.Create(player)

	assert.NoError(t, err)
	assert.Equal(t, "active daily", created.AdditionalInfo)
}

func TestListAppliesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockPlayerRepo := newTestUseCase(ctrl)

	other := createTestPlayer()
	other.ID = 2
	other.InGameName = "DragonSlayer"
	other.MainTroopType = "Cavalry"
	mockPlayerRepo.EXPECT().GetAll().Return([]*domain.Player{createTestPlayer(), other}, nil)

	players, err := useCase.List(domain.PlayerFilter{TroopType: "Cavalry"})

	assert.NoError(t, err)
	assert.Len(t, players, 1)
	assert.Equal(t, "DragonSlayer", players[0].InGameName)
}

func TestUpdatePlayerPartialFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockPlayerRepo := newTestUseCase(ctrl)

	mockPlayerRepo.EXPECT().GetByID(1).Return(createTestPlayer(), nil)
	mockPlayerRepo.EXPECT().Update(gomock.Any()).Return(nil)

	available := false
	power := 80000000
	updated, err := useCase.Update(1, domain.PlayerUpdate{Available: &available, Power: &power})

	assert.NoError(t, err)
	assert.False(t, updated.Available)
	assert.Equal(t, 80000000, updated.Power)
	assert.Equal(t, "AthenaWarrior", updated.InGameName)
}

func TestUpdatePlayerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockPlayerRepo := newTestUseCase(ctrl)

	mockPlayerRepo.EXPECT().GetByID(99).Return(nil, nil)

	updated, err := useCase.Update(99, domain.PlayerUpdate{})

	assert.Nil(t, updated)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodePlayerNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestGetByUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockPlayerRepo := newTestUseCase(ctrl)

	mockPlayerRepo.EXPECT().GetByUserID(4).Return(createTestPlayer(), nil)

	player, err := useCase.GetByUserID(4)

	assert.NoError(t, err)
	assert.Equal(t, 1, player.ID)
}
