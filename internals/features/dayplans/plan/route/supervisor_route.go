// file: internals/features/dayplans/plan/route/supervisor_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	planController "magangku_backend/internals/features/dayplans/plan/controller"
	"magangku_backend/internals/features/dayplans/plan/service"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

// Rute milik supervisor: approval gate awal + review gate EOD
func DayPlanSupervisorRoutes(router fiber.Router, db *gorm.DB) {
	em := service.NewLogEmitter()
	ctrl := planController.NewApprovalController(db, em)

	r := router.Group("/day-plans",
		authMiddleware.OnlyRoles(constants.RoleErrorSupervisor("review day plan"), constants.SupervisorAndAbove...),
	)

	r.Get("/:id", ctrl.GetByID)
	r.Post("/:id/approve", ctrl.Approve)
	r.Post("/:id/reject", ctrl.Reject)
	r.Post("/:id/eod/approve", ctrl.ApproveEOD)
	r.Post("/:id/eod/reject", ctrl.RejectEOD)
}
