package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// ApplicationHandler handles HTTP requests for the application workflow
type ApplicationHandler struct {
	applicationUseCase domain.ApplicationUseCase
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationUseCase domain.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{applicationUseCase: applicationUseCase}
}

// SubmitApplicationRequest represents the application submission body
type SubmitApplicationRequest struct {
	PlayerID  int    `json:"player_id" binding:"required,gt=0" example:"1"`
	KingdomID int    `json:"kingdom_id" binding:"required,gt=0" example:"2"`
	Message   string `json:"message" example:"Looking for an active KvK kingdom."`
}

// DecideApplicationRequest represents the status update body
type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required" example:"accepted"`
}

// Submit handles application submission
// @Summary Submit application
// @Description Express a player's interest in migrating to a kingdom; new applications start pending
// @Tags applications
// @Accept json
// @Produce json
// @Param request body SubmitApplicationRequest true "Application details"
// @Success 201 {object} domain.Application
// @Failure 400 {object} domain.AppError
// @Failure 500 {object} domain.AppError
// @Router /api/applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	application, err := h.applicationUseCase.Submit(req.PlayerID, req.KingdomID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// ListByPlayer handles listing a player's applications
// @Summary List a player's applications
// @Tags applications
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {array} domain.Application
// @Failure 400 {object} domain.AppError
// @Failure 500 {object} domain.AppError
// @Router /api/players/{id}/applications [get]
func (h *ApplicationHandler) ListByPlayer(c *gin.Context) {
	playerID, ok := pathID(c, "id", "player")
	if !ok {
		return
	}

	applications, err := h.applicationUseCase.ListByPlayer(playerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// ListByKingdom handles listing a kingdom's received applications
// @Summary List a kingdom's applications
// @Tags applications
// @Produce json
// @Param id path int true "Kingdom ID"
// @Success 200 {array} domain.Application
// @Failure 400 {object} domain.AppError
// @Failure 500 {object} domain.AppError
// @Router /api/kingdoms/{id}/applications [get]
func (h *ApplicationHandler) ListByKingdom(c *gin.Context) {
	kingdomID, ok := pathID(c, "id", "kingdom")
	if !ok {
		return
	}

	applications, err := h.applicationUseCase.ListByKingdom(kingdomID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

// Decide handles the kingdom admin's decision on an application
// @Summary Decide application
// @Description Move a pending application to accepted or rejected
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body DecideApplicationRequest true "New status"
// @Success 200 {object} domain.Application
// @Failure 400 {object} domain.AppError
// @Failure 404 {object} domain.AppError
// @Router /api/applications/{id} [patch]
func (h *ApplicationHandler) Decide(c *gin.Context) {
	id, ok := pathID(c, "id", "application")
	if !ok {
		return
	}

	var req DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	application, err := h.applicationUseCase.Decide(id, domain.ApplicationStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}
