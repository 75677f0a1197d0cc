package fees

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

// GetFeesAPI returns the fee schedule ordered by term start date then
// class progression order.
func GetFeesAPI(c *fiber.Ctx) error {
	feeTable, err := database.GetClassTermFees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee schedule"})
	}

	type FeeRowResponse struct {
		*models.ClassTermFees
		ClassLabel string          `json:"class_label"`
		TermLabel  string          `json:"term_label"`
		Total      decimal.Decimal `json:"total"`
	}

	responses := make([]FeeRowResponse, 0, len(feeTable))
	for _, row := range feeTable {
		responses = append(responses, FeeRowResponse{
			ClassTermFees: row,
			ClassLabel:    row.ClassLevel.Label(),
			TermLabel:     row.AcademicTerm.Label(),
			Total:         row.TotalFees(),
		})
	}

	return c.JSON(fiber.Map{
		"fees":  responses,
		"count": len(responses),
	})
}

func CreateFeesAPI(c *fiber.Ctx) error {
	type CreateFeesRequest struct {
		ClassLevelID   string `json:"class_level_id" validate:"required,uuid"`
		AcademicTermID string `json:"academic_term_id" validate:"required,uuid"`
		TuitionFee     string `json:"tuition_fee" validate:"required"`
		MealFee        string `json:"meal_fee"`
		ActivityFee    string `json:"activity_fee"`
	}

	var req CreateFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	tuition, err := decimal.NewFromString(req.TuitionFee)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid tuition fee amount"})
	}

	// Meal and activity fees default to zero when meals or activities
	// are not provided.
	meal := decimal.Zero
	if req.MealFee != "" {
		if meal, err = decimal.NewFromString(req.MealFee); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid meal fee amount"})
		}
	}
	activity := decimal.Zero
	if req.ActivityFee != "" {
		if activity, err = decimal.NewFromString(req.ActivityFee); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid activity fee amount"})
		}
	}

	fees := &models.ClassTermFees{
		ClassLevelID:   req.ClassLevelID,
		AcademicTermID: req.AcademicTermID,
		TuitionFee:     tuition,
		MealFee:        meal,
		ActivityFee:    activity,
	}

	if err := database.CreateClassTermFees(config.GetDB(), fees); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee schedule entry"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Fee schedule entry created successfully",
		"fees":    fees,
		"total":   fees.TotalFees(),
	})
}

func UpdateFeesAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	type UpdateFeesRequest struct {
		TuitionFee  string `json:"tuition_fee"`
		MealFee     string `json:"meal_fee"`
		ActivityFee string `json:"activity_fee"`
	}

	var req UpdateFeesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	fees, err := database.GetClassTermFeesByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee schedule entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee schedule entry"})
	}

	if req.TuitionFee != "" {
		v, err := decimal.NewFromString(req.TuitionFee)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid tuition fee amount"})
		}
		fees.TuitionFee = v
	}
	if req.MealFee != "" {
		v, err := decimal.NewFromString(req.MealFee)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid meal fee amount"})
		}
		fees.MealFee = v
	}
	if req.ActivityFee != "" {
		v, err := decimal.NewFromString(req.ActivityFee)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid activity fee amount"})
		}
		fees.ActivityFee = v
	}

	if err := database.UpdateClassTermFees(config.GetDB(), fees); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee schedule entry"})
	}

	return c.JSON(fiber.Map{
		"message": "Fee schedule entry updated successfully",
		"fees":    fees,
		"total":   fees.TotalFees(),
	})
}

func DeleteFeesAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := database.DeleteClassTermFees(config.GetDB(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee schedule entry not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee schedule entry"})
	}

	return c.JSON(fiber.Map{"message": "Fee schedule entry deleted successfully"})
}
