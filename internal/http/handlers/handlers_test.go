package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/domain/mocks"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
	"github.com/bannermatch/bannermatch/internal/usecase/application"
	"github.com/bannermatch/bannermatch/internal/usecase/kingdom"
	"github.com/bannermatch/bannermatch/internal/usecase/player"
	"github.com/bannermatch/bannermatch/internal/usecase/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router          *gin.Engine
	userRepo        *mocks.MockUserRepository
	playerRepo      *mocks.MockPlayerRepository
	kingdomRepo     *mocks.MockKingdomRepository
	applicationRepo *mocks.MockApplicationRepository
}

// newTestEnv wires the handlers against real use cases backed by
// mocked repositories, mirroring the production route table.
func newTestEnv(ctrl *gomock.Controller) *testEnv {
	env := &testEnv{
		userRepo:        mocks.NewMockUserRepository(ctrl),
		playerRepo:      mocks.NewMockPlayerRepository(ctrl),
		kingdomRepo:     mocks.NewMockKingdomRepository(ctrl),
		applicationRepo: mocks.NewMockApplicationRepository(ctrl),
	}

	newLogger := logger.NewLogger("test", "debug")
	userUseCase := user.NewUserUseCase(env.userRepo, newLogger)
	playerUseCase := player.NewPlayerUseCase(env.playerRepo, newLogger)
	kingdomUseCase := kingdom.NewKingdomUseCase(env.kingdomRepo, newLogger)
	applicationUseCase := application.NewApplicationUseCase(env.applicationRepo, env.playerRepo, env.kingdomRepo, newLogger)

	userHandler := NewUserHandler(userUseCase, playerUseCase, kingdomUseCase)
	playerHandler := NewPlayerHandler(playerUseCase)
	kingdomHandler := NewKingdomHandler(kingdomUseCase)
	applicationHandler := NewApplicationHandler(applicationUseCase)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/users", userHandler.Register)
		api.GET("/users/:id/player", userHandler.GetPlayerProfile)
		api.GET("/users/:id/kingdom", userHandler.GetKingdomListing)

		api.GET("/players", playerHandler.List)
		api.GET("/players/facets", playerHandler.Facets)
		api.GET("/players/:id", playerHandler.Get)
		api.POST("/players", playerHandler.Create)
		api.PATCH("/players/:id", playerHandler.Update)
		api.GET("/players/:id/applications", applicationHandler.ListByPlayer)

		api.GET("/kingdoms", kingdomHandler.List)
		api.GET("/kingdoms/facets", kingdomHandler.Facets)
		api.GET("/kingdoms/:id", kingdomHandler.Get)
		api.POST("/kingdoms", kingdomHandler.Create)
		api.PATCH("/kingdoms/:id", kingdomHandler.Update)
		api.GET("/kingdoms/:id/applications", applicationHandler.ListByKingdom)

		api.POST("/applications", applicationHandler.Submit)
		api.PATCH("/applications/:id", applicationHandler.Decide)
	}

	env.router = router
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	env.userRepo.EXPECT().GetByUsername("fresh_player").Return(nil, nil)
	env.userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		u.ID = 9
		return nil
	})

	w := env.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "fresh_player",
		"password": "password123",
		"email":    "fresh@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "fresh_player", body["username"])
	assert.Equal(t, "player", body["role"])
	assert.NotContains(t, body, "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	env.userRepo.EXPECT().GetByUsername("taken").Return(&domain.User{ID: 1, Username: "taken"}, nil)

	w := env.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "taken",
		"password": "password123",
		"email":    "taken@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Username already taken")
}

func TestRegisterInvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	w := env.do(t, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "no_password",
		"email":    "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCodeValidation)
}

func TestGetKingdomNonNumericID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository expectations: the id must be rejected before any
	// store access.
	env := newTestEnv(ctrl)

	w := env.do(t, http.MethodGet, "/api/kingdoms/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid kingdom ID")
}

func TestGetKingdomZeroIDIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Zero parses fine and simply matches no record.
	env := newTestEnv(ctrl)

	env.kingdomRepo.EXPECT().GetByID(0).Return(nil, nil)

	w := env.do(t, http.MethodGet, "/api/kingdoms/0", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCodeKingdomNotFound)
}

func TestGetPlayerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	env.playerRepo.EXPECT().GetByID(404).Return(nil, nil)

	w := env.do(t, http.MethodGet, "/api/players/404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCodePlayerNotFound)
}

func TestListPlayersWithFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	env.playerRepo.EXPECT().GetAll().Return([]*domain.Player{
		{ID: 1, InGameName: "AthenaWarrior", GameID: "19384756", MainTroopType: "Infantry", PlayStyle: "Rally Leader"},
		{ID: 2, InGameName: "DragonSlayer", GameID: "82756431", MainTroopType: "Cavalry", PlayStyle: "Field Fighter"},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/players?search=dragon&troop_type=Cavalry", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var players []*domain.Player
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &players))
	assert.Len(t, players, 1)
	assert.Equal(t, "DragonSlayer", players[0].InGameName)
}

func TestKingdomFacetsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	env.kingdomRepo.EXPECT().GetAll().Return([]*domain.Kingdom{
		{ID: 1, KingdomNumber: "1912", KingdomName: "Imperium Dynasty", Seed: "A", Status: "Active"},
		{ID: 2, KingdomNumber: "2546", KingdomName: "Phoenix Rising", Seed: "B", Status: "Recruiting"},
	}, nil)

	w := env.do(t, http.MethodGet, "/api/kingdoms/facets", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var options domain.KingdomFacetOptions
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
	assert.Equal(t, []string{"A", "B"}, options.Seeds)
	assert.Equal(t, []string{"Active", "Recruiting"}, options.Statuses)
}

func TestSubmitApplication(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	env.playerRepo.EXPECT().GetByID(1).Return(&domain.Player{ID: 1}, nil)
	env.kingdomRepo.EXPECT().GetByID(2).Return(&domain.Kingdom{ID: 2}, nil)
	env.applicationRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(a *domain.Application) error {
		a.ID = 5
		return nil
	})

	w := env.do(t, http.MethodPost, "/api/applications", map[string]interface{}{
		"player_id":  1,
		"kingdom_id": 2,
		"message":    "Ready to migrate",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var created domain.Application
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, domain.ApplicationStatusPending, created.Status)
}

func TestDecideApplicationLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	pending := &domain.Application{ID: 7, PlayerID: 1, KingdomID: 2, Status: domain.ApplicationStatusPending}
	env.applicationRepo.EXPECT().GetByID(7).Return(pending, nil)
	env.applicationRepo.EXPECT().UpdateStatus(7, domain.ApplicationStatusAccepted).Return(nil)

	w := env.do(t, http.MethodPatch, "/api/applications/7", map[string]interface{}{
		"status": "accepted",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accepted"`)

	// A second decision must be refused now that the application is
	// terminal.
	accepted := &domain.Application{ID: 7, PlayerID: 1, KingdomID: 2, Status: domain.ApplicationStatusAccepted}
	env.applicationRepo.EXPECT().GetByID(7).Return(accepted, nil)

	w = env.do(t, http.MethodPatch, "/api/applications/7", map[string]interface{}{
		"status": "rejected",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCodeApplicationInvalidStatus)
}

func TestDecideApplicationBogusStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	w := env.do(t, http.MethodPatch, "/api/applications/7", map[string]interface{}{
		"status": "maybe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrCodeValidation)
}

func TestUpdatePlayerPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(ctrl)

	existing := &domain.Player{
		ID:            3,
		UserID:        6,
		InGameName:    "ArcherQueen",
		GameID:        "54129876",
		Power:         52800000,
		MainTroopType: "Archer",
		PlayStyle:     "Support",
		Languages:     "English",
		Available:     true,
	}
	env.playerRepo.EXPECT().GetByID(3).Return(existing, nil)
	env.playerRepo.EXPECT().Update(gomock.Any()).Return(nil)

	w := env.do(t, http.MethodPatch, "/api/players/3", map[string]interface{}{
		"available": false,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var updated domain.Player
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.False(t, updated.Available)
	assert.Equal(t, "ArcherQueen", updated.InGameName)
}
