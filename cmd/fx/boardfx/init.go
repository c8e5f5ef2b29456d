package boardfx

import (
	"go.uber.org/fx"

	"whatsup/internal/api/controllers"
	"whatsup/internal/services"
	"whatsup/internal/store"
)

var Module = fx.Provide(
	provideBoardService, provideBoardController)

func provideBoardService(familyStore *store.FamilyStore) services.BoardServiceInterface {
	return services.NewBoardService(familyStore)
}

func provideBoardController(boardService services.BoardServiceInterface) *controllers.BoardController {
	return controllers.NewBoardController(boardService)
}
