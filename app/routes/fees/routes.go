package fees

import (
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFeesRoutes(app *fiber.App) {
	fees := app.Group("/fees")
	fees.Use(auth.AuthMiddleware)
	fees.Get("/", FeesPage)

	api := app.Group("/api/class-term-fees")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetFeesAPI)
	api.Post("/", CreateFeesAPI)
	api.Put("/:id", UpdateFeesAPI)
	api.Delete("/:id", DeleteFeesAPI)
}

func FeesPage(c *fiber.Ctx) error {
	feeTable, err := database.GetClassTermFees(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - The Spark Playhouse",
			"CurrentPage":  "fees",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load the fee schedule. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	return c.Render("fees/index", fiber.Map{
		"Title":       "Fee Schedule - The Spark Playhouse",
		"CurrentPage": "fees",
		"fees":        feeTable,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
