package app

import (
	"gorm.io/gorm"

	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/infrastructure/repository"
)

func (a *application) InitRepositories(db *gorm.DB) (
	domain.UserRepository,
	domain.PlayerRepository,
	domain.KingdomRepository,
	domain.ApplicationRepository,
) {
	return repository.NewUserRepository(db),
		repository.NewPlayerRepository(db),
		repository.NewKingdomRepository(db),
		repository.NewApplicationRepository(db)
}
