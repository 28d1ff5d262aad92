package app

import (
	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/infrastructure/logger"
	applicationuc "github.com/bannermatch/bannermatch/internal/usecase/application"
	kingdomuc "github.com/bannermatch/bannermatch/internal/usecase/kingdom"
	playeruc "github.com/bannermatch/bannermatch/internal/usecase/player"
	useruc "github.com/bannermatch/bannermatch/internal/usecase/user"
)

func (a *application) InitUserUseCase(ur domain.UserRepository, log *logger.Logger) domain.UserUseCase {
	return useruc.NewUserUseCase(ur, log)
}

func (a *application) InitPlayerUseCase(pr domain.PlayerRepository, log *logger.Logger) domain.PlayerUseCase {
	return playeruc.NewPlayerUseCase(pr, log)
}

func (a *application) InitKingdomUseCase(kr domain.KingdomRepository, log *logger.Logger) domain.KingdomUseCase {
	return kingdomuc.NewKingdomUseCase(kr, log)
}

func (a *application) InitApplicationUseCase(
	ar domain.ApplicationRepository,
	pr domain.PlayerRepository,
	kr domain.KingdomRepository,
	log *logger.Logger,
) domain.ApplicationUseCase {
	return applicationuc.NewApplicationUseCase(ar, pr, kr, log)
}
