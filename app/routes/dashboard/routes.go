package dashboard

import (
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", auth.AuthMiddleware, DashboardPage)
	app.Get("/api/dashboard/stats", auth.AuthMiddleware, GetDashboardStatsAPI)
}

func DashboardPage(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		stats = &models.DashboardStats{}
	}

	user := c.Locals("user").(*models.User)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - The Spark Playhouse",
		"CurrentPage": "dashboard",
		"stats":       stats,
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard statistics"})
	}
	return c.JSON(fiber.Map{"stats": stats})
}
