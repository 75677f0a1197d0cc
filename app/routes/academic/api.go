package academic

import (
	"database/sql"
	"errors"
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// termResponse augments a term with its derived status fields.
func termResponse(term *models.AcademicTerm) fiber.Map {
	return fiber.Map{
		"id":             term.ID,
		"name":           term.Name,
		"label":          term.Label(),
		"start_date":     term.StartDate,
		"end_date":       term.EndDate,
		"year":           term.Year,
		"status":         term.Status(),
		"days_remaining": term.DaysRemaining(),
		"created_at":     term.CreatedAt,
		"updated_at":     term.UpdatedAt,
	}
}

func GetTermsAPI(c *fiber.Ctx) error {
	terms, err := database.GetAcademicTerms(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch academic terms"})
	}

	responses := make([]fiber.Map, 0, len(terms))
	for _, term := range terms {
		responses = append(responses, termResponse(term))
	}

	return c.JSON(fiber.Map{
		"terms": responses,
		"count": len(responses),
	})
}

// GetCurrentTermAPI returns the term running today, if any.
func GetCurrentTermAPI(c *fiber.Ctx) error {
	term, err := database.GetActiveTerm(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch current term"})
	}
	if term == nil {
		return c.JSON(fiber.Map{"term": nil})
	}
	return c.JSON(fiber.Map{"term": termResponse(term)})
}

func GetTermByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	term, err := database.GetAcademicTermByID(config.GetDB(), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Academic term not found"})
	}

	return c.JSON(fiber.Map{"term": termResponse(term)})
}

func CreateTermAPI(c *fiber.Ctx) error {
	type CreateTermRequest struct {
		Name      string            `json:"name" validate:"required,oneof=term1 term2 term3"`
		StartDate models.CustomDate `json:"start_date" validate:"required"`
		EndDate   models.CustomDate `json:"end_date" validate:"required"`
		Year      int               `json:"year" validate:"required,min=2000"`
	}

	var req CreateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	term := &models.AcademicTerm{
		Name:      models.TermName(req.Name),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Year:      req.Year,
	}

	if err := database.CreateAcademicTerm(config.GetDB(), term); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create academic term"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Academic term created successfully",
		"term":    termResponse(term),
	})
}

func UpdateTermAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	term, err := database.GetAcademicTermByID(config.GetDB(), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Academic term not found"})
	}

	type UpdateTermRequest struct {
		Name      string            `json:"name" validate:"omitempty,oneof=term1 term2 term3"`
		StartDate models.CustomDate `json:"start_date"`
		EndDate   models.CustomDate `json:"end_date"`
		Year      int               `json:"year" validate:"omitempty,min=2000"`
	}

	var req UpdateTermRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != "" {
		term.Name = models.TermName(req.Name)
	}
	if !req.StartDate.IsZero() {
		term.StartDate = req.StartDate
	}
	if !req.EndDate.IsZero() {
		term.EndDate = req.EndDate
	}
	if req.Year != 0 {
		term.Year = req.Year
	}

	if err := database.UpdateAcademicTerm(config.GetDB(), term); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update academic term"})
	}

	return c.JSON(fiber.Map{
		"message": "Academic term updated successfully",
		"term":    termResponse(term),
	})
}

func DeleteTermAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := database.DeleteAcademicTerm(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Academic term not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete academic term"})
	}

	return c.JSON(fiber.Map{"message": "Academic term deleted successfully"})
}
