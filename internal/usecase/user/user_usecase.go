package user

import (
	"time"

	"go.uber.org/zap"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo domain.UserRepository
	logger   *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(userRepo domain.UserRepository, logger *logger.Logger) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a new account after checking the username is free.
// Only the public view is returned; the password stays internal.
func (uc *UserUseCase) Register(user *domain.User) (*domain.PublicUser, error) {
	uc.logger.Info("Registering user", zap.String("username", user.Username))

	existing, err := uc.userRepo.GetByUsername(user.Username)
	if err != nil {
		uc.logger.Error("Failed to check username availability",
			zap.String("username", user.Username), zap.Error(err))
		return nil, domain.NewStoreError("check username", err)
	}
	if existing != nil {
		uc.logger.Warn("Registration rejected, username taken",
			zap.String("username", user.Username))
		return nil, domain.NewConflictError(domain.ErrCodeUsernameTaken, "Username already taken")
	}

	if user.Role == "" {
		user.Role = domain.RolePlayer
	}
	user.CreatedAt = time.Now()

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user",
			zap.String("username", user.Username), zap.Error(err))
		return nil, domain.NewStoreError("create user", err)
	}

	uc.logger.Info("User registered",
		zap.Int("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)))

	return user.Public(), nil
}

// GetUserInfo retrieves an account by id
func (uc *UserUseCase) GetUserInfo(id int) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		uc.logger.Error("Failed to get user", zap.Int("user_id", id), zap.Error(err))
		return nil, domain.NewStoreError("fetch user", err)
	}
	if user == nil {
		return nil, domain.NewAppError(domain.ErrCodeUserNotFound, "User not found", 404, nil)
	}
	return user, nil
}
