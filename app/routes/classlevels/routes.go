package classlevels

import (
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassLevelsRoutes(app *fiber.App) {
	classes := app.Group("/class-levels")
	classes.Use(auth.AuthMiddleware)
	classes.Get("/", ClassLevelsPage)

	api := app.Group("/api/class-levels")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClassLevelsAPI)
	api.Get("/choices", GetClassLevelChoicesAPI)
	api.Get("/:id", GetClassLevelByIDAPI)
	api.Post("/", CreateClassLevelAPI)
	api.Put("/:id", UpdateClassLevelAPI)
	api.Delete("/:id", DeleteClassLevelAPI)
}

func ClassLevelsPage(c *fiber.Ctx) error {
	levels, err := database.GetClassLevels(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - The Spark Playhouse",
			"CurrentPage":  "class-levels",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load class levels. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	return c.Render("classlevels/index", fiber.Map{
		"Title":       "Class Levels - The Spark Playhouse",
		"CurrentPage": "class-levels",
		"levels":      levels,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
