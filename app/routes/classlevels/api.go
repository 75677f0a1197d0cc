package classlevels

import (
	"database/sql"
	"errors"
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// GetClassLevelsAPI returns all class levels in progression order.
func GetClassLevelsAPI(c *fiber.Ctx) error {
	levels, err := database.GetClassLevels(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class levels"})
	}

	type ClassLevelResponse struct {
		*models.ClassLevel
		Label string `json:"label"`
	}

	responses := make([]ClassLevelResponse, 0, len(levels))
	for _, level := range levels {
		responses = append(responses, ClassLevelResponse{ClassLevel: level, Label: level.Label()})
	}

	return c.JSON(fiber.Map{
		"class_levels": responses,
		"count":        len(responses),
	})
}

// GetClassLevelChoicesAPI returns the valid name choices with labels,
// for populating select inputs.
func GetClassLevelChoicesAPI(c *fiber.Ctx) error {
	type Choice struct {
		Name  models.ClassLevelName `json:"name"`
		Label string                `json:"label"`
	}

	choices := make([]Choice, 0, len(models.ClassLevelChoices))
	for _, choice := range models.ClassLevelChoices {
		choices = append(choices, Choice{Name: choice.Name, Label: choice.Label})
	}

	return c.JSON(fiber.Map{"choices": choices})
}

func GetClassLevelByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	level, err := database.GetClassLevelByID(config.GetDB(), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class level not found"})
	}

	return c.JSON(fiber.Map{"class_level": level, "label": level.Label()})
}

func CreateClassLevelAPI(c *fiber.Ctx) error {
	type CreateClassLevelRequest struct {
		Name          string `json:"name" validate:"required,oneof=beginner pp1 pp2 grade1 grade2"`
		Description   string `json:"description"`
		AgeCriteria   *int   `json:"age_criteria" validate:"omitempty,min=0"`
		AdmissionFee  string `json:"admission_fee" validate:"required"`
		AssessmentFee string `json:"assessment_fee" validate:"required"`
	}

	var req CreateClassLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	admissionFee, err := decimal.NewFromString(req.AdmissionFee)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid admission fee amount"})
	}
	assessmentFee, err := decimal.NewFromString(req.AssessmentFee)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid assessment fee amount"})
	}

	level := &models.ClassLevel{
		Name:          models.ClassLevelName(req.Name),
		Description:   req.Description,
		AgeCriteria:   req.AgeCriteria,
		AdmissionFee:  admissionFee,
		AssessmentFee: assessmentFee,
	}

	if err := database.CreateClassLevel(config.GetDB(), level); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class level"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Class level created successfully",
		"class_level": level,
	})
}

func UpdateClassLevelAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	level, err := database.GetClassLevelByID(config.GetDB(), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class level not found"})
	}

	type UpdateClassLevelRequest struct {
		Name          string  `json:"name" validate:"omitempty,oneof=beginner pp1 pp2 grade1 grade2"`
		Description   *string `json:"description"`
		AgeCriteria   *int    `json:"age_criteria" validate:"omitempty,min=0"`
		AdmissionFee  string  `json:"admission_fee"`
		AssessmentFee string  `json:"assessment_fee"`
	}

	var req UpdateClassLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != "" {
		level.Name = models.ClassLevelName(req.Name)
	}
	if req.Description != nil {
		level.Description = *req.Description
	}
	if req.AgeCriteria != nil {
		level.AgeCriteria = req.AgeCriteria
	}
	if req.AdmissionFee != "" {
		fee, err := decimal.NewFromString(req.AdmissionFee)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid admission fee amount"})
		}
		level.AdmissionFee = fee
	}
	if req.AssessmentFee != "" {
		fee, err := decimal.NewFromString(req.AssessmentFee)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid assessment fee amount"})
		}
		level.AssessmentFee = fee
	}

	if err := database.UpdateClassLevel(config.GetDB(), level); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class level"})
	}

	return c.JSON(fiber.Map{
		"message":     "Class level updated successfully",
		"class_level": level,
	})
}

func DeleteClassLevelAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := database.DeleteClassLevel(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class level not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class level"})
	}

	return c.JSON(fiber.Map{"message": "Class level deleted successfully"})
}
