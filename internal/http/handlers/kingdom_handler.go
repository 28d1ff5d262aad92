package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// KingdomHandler handles HTTP requests for kingdom listings
type KingdomHandler struct {
	kingdomUseCase domain.KingdomUseCase
}

// NewKingdomHandler creates a new kingdom handler
func NewKingdomHandler(kingdomUseCase domain.KingdomUseCase) *KingdomHandler {
	return &KingdomHandler{kingdomUseCase: kingdomUseCase}
}

// CreateKingdomRequest represents the listing submission body
type CreateKingdomRequest struct {
	UserID         int    `json:"user_id" binding:"required,gt=0" example:"1"`
	KingdomNumber  string `json:"kingdom_number" binding:"required,max=16" example:"2358"`
	KingdomName    string `json:"kingdom_name" binding:"required,max=64" example:"Dragon's Lair"`
	Seed           string `json:"seed" binding:"required,max=8" example:"A"`
	AveragePower   int    `json:"average_power" binding:"min=0" example:"45000000"`
	KvkSeason      string `json:"kvk_season" binding:"required,max=32" example:"Season of Conquest"`
	MinimumPower   int    `json:"minimum_power" binding:"min=0" example:"25000000"`
	Status         string `json:"status" binding:"required,max=32" example:"Recruiting"`
	KingdomType    string `json:"kingdom_type" binding:"required,max=32" example:"Competitive"`
	Languages      string `json:"languages" binding:"required,max=128" example:"English, Chinese"`
	BannerImageURL string `json:"banner_image_url" binding:"omitempty,max=256"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
}

// List handles listing kingdoms with optional filter parameters
// @Summary List kingdoms
// @Description List kingdom listings; search, seed and status narrow the collection
// @Tags kingdoms
// @Produce json
// @Param search query string false "Case-insensitive substring over name or number"
// @Param seed query string false "Exact seed"
// @Param status query string false "Exact status"
// @Success 200 {array} domain.Kingdom
// @Failure 500 {object} domain.AppError
// @Router /api/kingdoms [get]
func (h *KingdomHandler) List(c *gin.Context) {
	var filter domain.KingdomFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindingError(c, err)
		return
	}

	kingdoms, err := h.kingdomUseCase.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, kingdoms)
}

// Facets handles deriving the selectable filter options
// @Summary Kingdom filter facets
// @Description Distinct seeds and statuses present in the current collection
// @Tags kingdoms
// @Produce json
// @Success 200 {object} domain.KingdomFacetOptions
// @Failure 500 {object} domain.AppError
// @Router /api/kingdoms/facets [get]
func (h *KingdomHandler) Facets(c *gin.Context) {
	options, err := h.kingdomUseCase.Facets()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, options)
}

// Get handles fetching a single kingdom listing
// @Summary Get kingdom
// @Tags kingdoms
// @Produce json
// @Param id path int true "Kingdom ID"
// @Success 200 {object} domain.Kingdom
// @Failure 400 {object} domain.AppError
// @Failure 404 {object} domain.AppError
// @Router /api/kingdoms/{id} [get]
func (h *KingdomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "kingdom")
	if !ok {
		return
	}

	kingdom, err := h.kingdomUseCase.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, kingdom)
}

// Create handles kingdom listing submission
// @Summary Create kingdom listing
// @Tags kingdoms
// @Accept json
// @Produce json
// @Param request body CreateKingdomRequest true "Listing details"
// @Success 201 {object} domain.Kingdom
// @Failure 400 {object} domain.AppError
// @Failure 500 {object} domain.AppError
// @Router /api/kingdoms [post]
func (h *KingdomHandler) Create(c *gin.Context) {
	var req CreateKingdomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	kingdom := &domain.Kingdom{
		UserID:         req.UserID,
		KingdomNumber:  req.KingdomNumber,
		KingdomName:    req.KingdomName,
		Seed:           req.Seed,
		AveragePower:   req.AveragePower,
		KvkSeason:      req.KvkSeason,
		MinimumPower:   req.MinimumPower,
		Status:         req.Status,
		KingdomType:    req.KingdomType,
		Languages:      req.Languages,
		BannerImageURL: req.BannerImageURL,
		Description:    req.Description,
		Requirements:   req.Requirements,
	}

	created, err := h.kingdomUseCase.Create(kingdom)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles partial update of a kingdom listing
// @Summary Update kingdom listing
// @Tags kingdoms
// @Accept json
// @Produce json
// @Param id path int true "Kingdom ID"
// @Param request body domain.KingdomUpdate true "Fields to change"
// @Success 200 {object} domain.Kingdom
// @Failure 400 {object} domain.AppError
// @Failure 404 {object} domain.AppError
// @Router /api/kingdoms/{id} [patch]
func (h *KingdomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "kingdom")
	if !ok {
		return
	}

	var update domain.KingdomUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBindingError(c, err)
		return
	}

	kingdom, err := h.kingdomUseCase.Update(id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, kingdom)
}
