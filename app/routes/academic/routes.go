package academic

import (
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAcademicRoutes(app *fiber.App) {
	academic := app.Group("/academic")
	academic.Use(auth.AuthMiddleware)
	academic.Get("/", AcademicPage)

	api := app.Group("/api/academic-terms")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTermsAPI)
	api.Get("/current", GetCurrentTermAPI)
	api.Get("/:id", GetTermByIDAPI)
	api.Post("/", CreateTermAPI)
	api.Put("/:id", UpdateTermAPI)
	api.Delete("/:id", DeleteTermAPI)
}

func AcademicPage(c *fiber.Ctx) error {
	terms, err := database.GetAcademicTerms(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - The Spark Playhouse",
			"CurrentPage":  "academic",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load academic terms. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	return c.Render("academic/index", fiber.Map{
		"Title":       "Academic Terms - The Spark Playhouse",
		"CurrentPage": "academic",
		"terms":       terms,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
