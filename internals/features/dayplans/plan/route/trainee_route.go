// file: internals/features/dayplans/plan/route/trainee_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/constants"
	planController "magangku_backend/internals/features/dayplans/plan/controller"
	"magangku_backend/internals/features/dayplans/plan/service"
	"magangku_backend/internals/middlewares"
	authMiddleware "magangku_backend/internals/middlewares/auth"
)

// Rute milik trainee: authoring + submit plan, progres task, submit EOD
func DayPlanTraineeRoutes(router fiber.Router, db *gorm.DB) {
	em := service.NewLogEmitter()
	planCtrl := planController.NewDayPlanController(db, em)
	progCtrl := planController.NewProgressController(db, em)

	r := router.Group("/day-plans",
		authMiddleware.OnlyRoles(constants.RoleErrorTrainee("day plan"), constants.TraineeOnly...),
	)

	r.Post("/", middlewares.SubmitRateLimiter(), planCtrl.Submit)
	r.Get("/", planCtrl.List)
	r.Get("/:id", planCtrl.GetByID)
	r.Get("/:id/edit", planCtrl.LoadForEdit)
	r.Put("/:id/tasks/:taskId/status", progCtrl.SetTaskStatus)
	r.Post("/:id/eod", middlewares.SubmitRateLimiter(), progCtrl.SubmitEOD)
}
