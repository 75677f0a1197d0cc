package guardians

import (
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGuardiansRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Use(auth.AuthMiddleware)
	api.Get("/learners/:learner_id/guardians", GetGuardiansAPI)
	api.Post("/learners/:learner_id/guardians", CreateGuardianAPI)
	api.Get("/guardians/:id", GetGuardianByIDAPI)
	api.Put("/guardians/:id", UpdateGuardianAPI)
	api.Delete("/guardians/:id", DeleteGuardianAPI)
}
