package mealplans

import (
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupMealPlansRoutes(app *fiber.App) {
	meals := app.Group("/meal-plans")
	meals.Use(auth.AuthMiddleware)
	meals.Get("/", MealPlansPage)

	api := app.Group("/api/meal-plans")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetMealPlansAPI)
	api.Get("/:id", GetMealPlanByIDAPI)
	api.Post("/", CreateMealPlanAPI)
	api.Put("/:id", UpdateMealPlanAPI)
	api.Delete("/:id", DeleteMealPlanAPI)
}

func MealPlansPage(c *fiber.Ctx) error {
	plans, err := database.GetMealPlans(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - The Spark Playhouse",
			"CurrentPage":  "meal-plans",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load meal plans. Please try again later.",
			"ShowRetry":    true,
			"user":         c.Locals("user"),
		})
	}

	user := c.Locals("user").(*models.User)
	return c.Render("mealplans/index", fiber.Map{
		"Title":       "Meal Plans - The Spark Playhouse",
		"CurrentPage": "meal-plans",
		"plans":       plans,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
