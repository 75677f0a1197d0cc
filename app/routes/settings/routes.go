package settings

import (
	"spark-playhouse/app/config"
	"spark-playhouse/app/models"
	"spark-playhouse/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	app.Get("/settings", auth.AuthMiddleware, SettingsPage)

	// Branding is public; the login page reads it too.
	app.Get("/api/settings/site", GetSiteSettingsAPI)
}

func SettingsPage(c *fiber.Ctx) error {
	site := config.GetSite()
	user := c.Locals("user").(*models.User)
	return c.Render("settings/index", fiber.Map{
		"Title":        "Settings - The Spark Playhouse",
		"CurrentPage":  "settings",
		"SiteName":     site.Name,
		"Description":  site.Description,
		"ContactEmail": site.ContactEmail,
		"user":         user,
		"FirstName":    user.FirstName,
		"LastName":     user.LastName,
		"Email":        user.Email,
	})
}

func GetSiteSettingsAPI(c *fiber.Ctx) error {
	site := config.GetSite()
	return c.JSON(fiber.Map{
		"name":          site.Name,
		"description":   site.Description,
		"contact_email": site.ContactEmail,
	})
}
