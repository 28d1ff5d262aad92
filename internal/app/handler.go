package app

import (
	"github.com/bannermatch/bannermatch/internal/domain"
	"github.com/bannermatch/bannermatch/internal/http/handlers"
)

func (a *application) InitUserHandler(
	uc domain.UserUseCase,
	pc domain.PlayerUseCase,
	kc domain.KingdomUseCase,
) *handlers.UserHandler {
	return handlers.NewUserHandler(uc, pc, kc)
}

func (a *application) InitPlayerHandler(pc domain.PlayerUseCase) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(pc)
}

func (a *application) InitKingdomHandler(kc domain.KingdomUseCase) *handlers.KingdomHandler {
	return handlers.NewKingdomHandler(kc)
}

func (a *application) InitApplicationHandler(ac domain.ApplicationUseCase) *handlers.ApplicationHandler {
	return handlers.NewApplicationHandler(ac)
}
