package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// UserHandler handles HTTP requests for account operations
type UserHandler struct {
	userUseCase    domain.UserUseCase
	playerUseCase  domain.PlayerUseCase
	kingdomUseCase domain.KingdomUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userUseCase domain.UserUseCase,
	playerUseCase domain.PlayerUseCase,
	kingdomUseCase domain.KingdomUseCase,
) *UserHandler {
	return &UserHandler{
		userUseCase:    userUseCase,
		playerUseCase:  playerUseCase,
		kingdomUseCase: kingdomUseCase,
	}
}

// RegisterRequest represents the sign-up request body
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=64" example:"player1"`
	Password string `json:"password" binding:"required,min=6,max=128" example:"password123"`
	Email    string `json:"email" binding:"required,email" example:"player1@example.com"`
	Role     string `json:"role" binding:"omitempty,oneof=player kingdom_admin" example:"player"`
}

// Register handles account sign-up
// @Summary Register account
// @Description Create a new account; answers the public view without the password
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} domain.PublicUser
// @Failure 400 {object} domain.AppError
// @Failure 500 {object} domain.AppError
// @Router /api/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user := &domain.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     domain.UserRole(req.Role),
	}

	publicUser, err := h.userUseCase.Register(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publicUser)
}

// GetPlayerProfile handles looking up the player profile owned by an account
// @Summary Get an account's player profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.Player
// @Failure 400 {object} domain.AppError
// @Failure 404 {object} domain.AppError
// @Router /api/users/{id}/player [get]
func (h *UserHandler) GetPlayerProfile(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	player, err := h.playerUseCase.GetByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// GetKingdomListing handles looking up the kingdom listing owned by an account
// @Summary Get an account's kingdom listing
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.Kingdom
// @Failure 400 {object} domain.AppError
// @Failure 404 {object} domain.AppError
// @Router /api/users/{id}/kingdom [get]
func (h *UserHandler) GetKingdomListing(c *gin.Context) {
	userID, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	kingdom, err := h.kingdomUseCase.GetByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, kingdom)
}
