// file: internals/features/dayplans/draftcache/route/draft_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	draftController "magangku_backend/internals/features/dayplans/draftcache/controller"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

func DraftCacheRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := draftController.NewDraftController(db)

	r := router.Group("/day-plan-drafts",
		authMiddleware.OnlyRoles(constants.RoleErrorTrainee("draft day plan"), constants.TraineeOnly...),
	)

	r.Get("/", ctrl.Get)
	r.Put("/", ctrl.Save)
	r.Delete("/", ctrl.Delete)
}
