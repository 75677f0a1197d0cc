package learners

import (
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLearnersRoutes(app *fiber.App) {
	learners := app.Group("/learners")
	learners.Use(auth.AuthMiddleware)
	learners.Get("/", LearnersPage)

	api := app.Group("/api/learners")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetLearnersAPI)
	api.Get("/:id", GetLearnerByIDAPI)
	api.Get("/:id/term-fees", GetLearnerTermFeesAPI)
	api.Post("/", CreateLearnerAPI)
	api.Put("/:id", UpdateLearnerAPI)
	api.Put("/:id/medical-info", UpsertMedicalInfoAPI)
	api.Put("/:id/additional-info", UpsertAdditionalInfoAPI)
	api.Delete("/:id", DeleteLearnerAPI)
}

func LearnersPage(c *fiber.Ctx) error {
	learnerList, err := database.GetLearners(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - The Spark Playhouse",
			"CurrentPage":  "learners",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load learners. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	levels, err := database.GetClassLevels(config.GetDB())
	if err != nil {
		levels = nil
	}

	user := c.Locals("user").(*models.User)
	return c.Render("learners/index", fiber.Map{
		"Title":       "Learners - The Spark Playhouse",
		"CurrentPage": "learners",
		"learners":    learnerList,
		"levels":      levels,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
