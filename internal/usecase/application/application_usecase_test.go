package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/domain/mocks"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

func newTestUseCase(ctrl *gomock.Controller) (*ApplicationUseCase, *mocks.MockApplicationRepository, *mocks.MockPlayerRepository, *mocks.MockKingdomRepository) {
	mockAppRepo := mocks.NewMockApplicationRepository(ctrl)
	mockPlayerRepo := mocks.NewMockPlayerRepository(ctrl)
	mockKingdomRepo := mocks.NewMockKingdomRepository(ctrl)
	newLogger := logger.NewLogger("test", "debug")

	useCase := &ApplicationUseCase{
		applicationRepo: mockAppRepo,
		playerRepo:      mockPlayerRepo,
		kingdomRepo:     mockKingdomRepo,
		sanitizer:       bluemonday.StrictPolicy(),
		logger:          newLogger,
	}
	return useCase, mockAppRepo, mockPlayerRepo, mockKingdomRepo
}

func createTestPlayer() *domain.Player {
	return &domain.Player{
		ID:            10,
		UserID:        4,
		InGameName:    "DragonSlayer",
		GameID:        "82756431",
		Power:         65200000,
		MainTroopType: "Cavalry",
		PlayStyle:     "Field Fighter",
		Languages:     "English/Spanish",
		Available:     true,
	}
}

func createTestKingdom() *domain.Kingdom {
	return &domain.Kingdom{
		ID:            20,
		UserID:        1,
		KingdomNumber: "1912",
		KingdomName:   "Imperium Dynasty",
		Seed:          "A",
		Status:        "Active",
	}
}

func createTestApplication(status domain.ApplicationStatus) *domain.Application {
	return &domain.Application{
		ID:        7,
		PlayerID:  10,
		KingdomID: 20,
		Status:    status,
		Message:   "Looking to migrate for KVK",
		CreatedAt: time.Now(),
	}
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockAppRepo, mockPlayerRepo, mockKingdomRepo := newTestUseCase(ctrl)

	mockPlayerRepo.EXPECT().GetByID(10).Return(createTestPlayer(), nil)
	mockKingdomRepo.EXPECT().GetByID(20).Return(createTestKingdom(), nil)
	mockAppRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *domain.Application) error {
		a.ID = 7
		return nil
	})

	application, err := useCase.Submit(10, 20, "Looking to migrate for KVK")

	assert.NoError(t, err)
	assert.NotNil(t, application)
	assert.Equal(t, 7, application.ID)
	assert.Equal(t, domain.ApplicationStatusPending, application.Status)
	assert.Equal(t, "Looking to migrate for KVK", application.Message)
	assert.False(t, application.CreatedAt.IsZero())
}

func TestSubmitSanitizesMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockAppRepo, mockPlayerRepo, mockKingdomRepo := newTestUseCase(ctrl)

	mockPlayerRepo.EXPECT().GetByID(10).Return(createTestPlayer(), nil)
	mockKingdomRepo.EXPECT().GetByID(20).Return(createTestKingdom(), nil)
	mockAppRepo.EXPECT().Create(gomock.Any()).Return(nil)

	application, err := useCase.Submit(10, 20, `<script>alert(1)</script>hello`)

	assert.NoError(t, err)
	assert.Equal(t, "hello", application.Message)
}

func TestSubmitMissingReferences(t *testing.T) {
	tests := []struct {
		name          string
		playerID      int
		kingdomID     int
		player        *domain.Player
		kingdom       *domain.Kingdom
		expectedField string
	}{
		{
			name:          "Player_Not_Found",
			playerID:      99,
			kingdomID:     20,
			player:        nil,
			expectedField: "player_id",
		},
		{
			name:          "Kingdom_Not_Found",
			playerID:      10,
			kingdomID:     99,
			player:        createTestPlayer(),
			kingdom:       nil,
			expectedField: "kingdom_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			useCase, _, mockPlayerRepo, mockKingdomRepo := newTestUseCase(ctrl)

			mockPlayerRepo.EXPECT().GetByID(tt.playerID).Return(tt.player, nil)
			if tt.player != nil {
				mockKingdomRepo.EXPECT().GetByID(tt.kingdomID).Return(tt.kingdom, nil)
			}

			application, err := useCase.Submit(tt.playerID, tt.kingdomID, "")

			assert.Nil(t, application)
			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
			assert.Equal(t, 400, appErr.HTTPStatus)
			assert.Len(t, appErr.Errors, 1)
			assert.Equal(t, tt.expectedField, appErr.Errors[0].Field)
		})
	}
}

func TestSubmitNonPositiveIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, _, _, _ := newTestUseCase(ctrl)

	application, err := useCase.Submit(0, 20, "")
	assert.Nil(t, application)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeValidation, appErr.Code)

	application, err = useCase.Submit(10, -1, "")
	assert.Nil(t, application)
	appErr, ok = domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
}

func TestDecideAcceptsPendingApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockAppRepo, _, _ := newTestUseCase(ctrl)

	mockAppRepo.EXPECT().GetByID(7).Return(createTestApplication(domain.ApplicationStatusPending), nil)
	mockAppRepo.EXPECT().UpdateStatus(7, domain.ApplicationStatusAccepted).Return(nil)

	application, err := useCase.Decide(7, domain.ApplicationStatusAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusAccepted, application.Status)
}

func TestDecideInvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The repository must not be touched when the status is bogus.
	useCase, _, _, _ := newTestUseCase(ctrl)

	application, err := useCase.Decide(7, domain.ApplicationStatus("bogus"))

	assert.Nil(t, application)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestDecideApplicationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockAppRepo, _, _ := newTestUseCase(ctrl)

	mockAppRepo.EXPECT().GetByID(999).Return(nil, nil)

	application, err := useCase.Decide(999, domain.ApplicationStatusAccepted)

	assert.Nil(t, application)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeApplicationNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestDecideTerminalApplications(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ApplicationStatus
	}{
		{name: "Already_Accepted", status: domain.ApplicationStatusAccepted},
		{name: "Already_Rejected", status: domain.ApplicationStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			useCase, mockAppRepo, _, _ := newTestUseCase(ctrl)

			mockAppRepo.EXPECT().GetByID(7).Return(createTestApplication(tt.status), nil)

			application, err := useCase.Decide(7, domain.ApplicationStatusRejected)

			assert.Nil(t, application)
			appErr, ok := domain.IsAppError(err)
			assert.True(t, ok)
			assert.Equal(t, domain.ErrCodeApplicationInvalidStatus, appErr.Code)
			assert.Equal(t, 400, appErr.HTTPStatus)
			assert.Contains(t, appErr.Message, string(tt.status))
		})
	}
}

func TestDecideStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockAppRepo, _, _ := newTestUseCase(ctrl)

	mockAppRepo.EXPECT().GetByID(7).Return(nil, errors.New("connection refused"))

	application, err := useCase.Decide(7, domain.ApplicationStatusAccepted)

	assert.Nil(t, application)
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeStore, appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
}

func TestListByPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockAppRepo, _, _ := newTestUseCase(ctrl)

	expected := []*domain.Application{createTestApplication(domain.ApplicationStatusPending)}
	mockAppRepo.EXPECT().GetByPlayerID(10).Return(expected, nil)

	applications, err := useCase.ListByPlayer(10)

	assert.NoError(t, err)
	assert.Equal(t, expected, applications)
}

func TestListByKingdom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	useCase, mockAppRepo, _, _ := newTestUseCase(ctrl)

	expected := []*domain.Application{createTestApplication(domain.ApplicationStatusPending)}
	mockAppRepo.EXPECT().GetByKingdomID(20).Return(expected, nil)

	applications, err := useCase.ListByKingdom(20)

	assert.NoError(t, err)
	assert.Equal(t, expected, applications)
}
