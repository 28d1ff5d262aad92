package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// PlayerHandler handles HTTP requests for player profiles
type PlayerHandler struct {
	playerUseCase domain.PlayerUseCase
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerUseCase domain.PlayerUseCase) *PlayerHandler {
	return &PlayerHandler{playerUseCase: playerUseCase}
}

// CreatePlayerRequest represents the profile submission body
type CreatePlayerRequest struct {
	UserID          int    `json:"user_id" binding:"required,gt=0" example:"4"`
	InGameName      string `json:"in_game_name" binding:"required,max=64" example:"DragonSlayer"`
	GameID          string `json:"game_id" binding:"required,max=32" example:"12345678"`
	Power           int    `json:"power" binding:"min=0" example:"55000000"`
	KillPoints      int    `json:"kill_points" binding:"min=0" example:"1200000000"`
	DeadTroops      int    `json:"dead_troops" binding:"min=0" example:"4000000"`
	VIPLevel        int    `json:"vip_level" binding:"min=0" example:"14"`
	HasTier5        bool   `json:"has_tier5" example:"true"`
	MainTroopType   string `json:"main_troop_type" binding:"required,max=32" example:"Cavalry"`
	PlayStyle       string `json:"play_style" binding:"required,max=32" example:"Rally Leader"`
	Languages       string `json:"languages" binding:"required,max=128" example:"English"`
	ProfileImageURL string `json:"profile_image_url" binding:"omitempty,max=256"`
	Available       *bool  `json:"available" example:"true"`
	AdditionalInfo  string `json:"additional_info"`
}

// List handles listing players with optional filter parameters
// @Summary List players
// @Description List player profiles; search, troop_type and play_style narrow the collection
// @Tags players
// @Produce json
// @Param search query string false "Case-insensitive substring over name or game id"
// @Param troop_type query string false "Exact troop type"
// @Param play_style query string false "Exact play style"
// @Success 200 {array} domain.Player
// @Failure 500 {object} domain.AppError
// @Router /api/players [get]
func (h *PlayerHandler) List(c *gin.Context) {
	var filter domain.PlayerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindingError(c, err)
		return
	}

	players, err := h.playerUseCase.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, players)
}

// Facets handles deriving the selectable filter options
// @Summary Player filter facets
// @Description Distinct troop types and play styles present in the current collection
// @Tags players
// @Produce json
// @Success 200 {object} domain.PlayerFacetOptions
// @Failure 500 {object} domain.AppError
// @Router /api/players/facets [get]
func (h *PlayerHandler) Facets(c *gin.Context) {
	options, err := h.playerUseCase.Facets()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// Get handles fetching a single player profile
// @Summary Get player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 400 {object} domain.AppError
// @Failure 404 {object} domain.AppError
// @Router /api/players/{id} [get]
func (h *PlayerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "player")
	if !ok {
		return
	}

	player, err := h.playerUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// Create handles player profile submission
// @Summary Create player profile
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Profile details"
// @Success 201 {object} domain.Player
// @Failure 400 {object} domain.AppError
// @Failure 500 {object} domain.AppError
// @Router /api/players [post]
func (h *PlayerHandler) Create(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	player := &domain.Player{
		UserID:          req.UserID,
		InGameName:      req.InGameName,
		GameID:          req.GameID,
		Power:           req.Power,
		KillPoints:      req.KillPoints,
		DeadTroops:      req.DeadTroops,
		VIPLevel:        req.VIPLevel,
		HasTier5:        req.HasTier5,
		MainTroopType:   req.MainTroopType,
		PlayStyle:       req.PlayStyle,
		Languages:       req.Languages,
		ProfileImageURL: req.ProfileImageURL,
		Available:       available,
		AdditionalInfo:  req.AdditionalInfo,
	}

	created, err := h.playerUseCase.Create(player)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles partial update of a player profile
// @Summary Update player profile
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param request body domain.PlayerUpdate true "Fields to change"
// @Success 200 {object} domain.Player
// @Failure 400 {object} domain.AppError
// @Failure 404 {object} domain.AppError
// @Router /api/players/{id} [patch]
func (h *PlayerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "player")
	if !ok {
		return
	}

	var update domain.PlayerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBindingError(c, err)
		return
	}

	player, err := h.playerUseCase.Update(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}
