// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"magangku_backend/internals/configs"
	authMiddleware "magangku_backend/internals/middlewares/auth"
	routeDetails "magangku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/api/uptime", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"uptime": time.Since(startTime).String(),
		})
	})

	// ===================== PRIVATE (TRAINEE) =====================
	log.Println("[INFO] Setting up TRAINEE group...")
	trainee := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.DayPlanTraineeRoutes(trainee, db)
	routeDetails.DraftCacheRoutes(trainee, db)

	// ===================== PRIVATE (SUPERVISOR) =====================
	log.Println("[INFO] Setting up SUPERVISOR group...")
	supervisor := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)
	routeDetails.DayPlanSupervisorRoutes(supervisor, db)
}
