// file: internals/route/details/dayplan_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	draftRoutes "magangku_backend/internals/features/dayplans/draftcache/route"
	planRoutes "magangku_backend/internals/features/dayplans/plan/route"
)

func DayPlanTraineeRoutes(router fiber.Router, db *gorm.DB) {
	planRoutes.DayPlanTraineeRoutes(router, db)
}

func DayPlanSupervisorRoutes(router fiber.Router, db *gorm.DB) {
	planRoutes.DayPlanSupervisorRoutes(router, db)
}

func DraftCacheRoutes(router fiber.Router, db *gorm.DB) {
	draftRoutes.DraftCacheRoutes(router, db)
}
