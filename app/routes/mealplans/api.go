package mealplans

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

func GetMealPlansAPI(c *fiber.Ctx) error {
	plans, err := database.GetMealPlans(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch meal plans"})
	}

	type MealPlanResponse struct {
		*models.MealPlan
		PlanLabel string `json:"plan_label"`
		DayLabel  string `json:"day_label"`
	}

	responses := make([]MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, MealPlanResponse{
			MealPlan:  plan,
			PlanLabel: plan.PlanType.Label(),
			DayLabel:  plan.Day.Label(),
		})
	}

	return c.JSON(fiber.Map{
		"meal_plans": responses,
		"count":      len(responses),
	})
}

func GetMealPlanByIDAPI(c *fiber.Ctx) error {
	plan, err := database.GetMealPlanByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Meal plan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch meal plan"})
	}
	return c.JSON(fiber.Map{"meal_plan": plan})
}

func CreateMealPlanAPI(c *fiber.Ctx) error {
	type CreateMealPlanRequest struct {
		PlanType     string `json:"plan_type" validate:"required,oneof=daycare school"`
		Day          string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday"`
		MorningSnack string `json:"morning_snack" validate:"required"`
		Lunch        string `json:"lunch" validate:"required"`
		EveningSnack string `json:"evening_snack" validate:"required"`
		SpecialNotes string `json:"special_notes"`
	}

	var req CreateMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	plan := &models.MealPlan{
		PlanType:     models.MealPlanType(req.PlanType),
		Day:          models.DayOfWeek(req.Day),
		MorningSnack: req.MorningSnack,
		Lunch:        req.Lunch,
		EveningSnack: req.EveningSnack,
		SpecialNotes: req.SpecialNotes,
	}

	if err := database.CreateMealPlan(config.GetDB(), plan); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create meal plan"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Meal plan created successfully",
		"meal_plan": plan,
	})
}

func UpdateMealPlanAPI(c *fiber.Ctx) error {
	plan, err := database.GetMealPlanByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Meal plan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch meal plan"})
	}

	// The (plan type, day) slot is fixed after creation; only the menu
	// itself can change.
	type UpdateMealPlanRequest struct {
		MorningSnack string  `json:"morning_snack"`
		Lunch        string  `json:"lunch"`
		EveningSnack string  `json:"evening_snack"`
		SpecialNotes *string `json:"special_notes"`
	}

	var req UpdateMealPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if req.MorningSnack != "" {
		plan.MorningSnack = req.MorningSnack
	}
	if req.Lunch != "" {
		plan.Lunch = req.Lunch
	}
	if req.EveningSnack != "" {
		plan.EveningSnack = req.EveningSnack
	}
	if req.SpecialNotes != nil {
		plan.SpecialNotes = *req.SpecialNotes
	}

	if err := database.UpdateMealPlan(config.GetDB(), plan); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update meal plan"})
	}

	return c.JSON(fiber.Map{
		"message":   "Meal plan updated successfully",
		"meal_plan": plan,
	})
}

func DeleteMealPlanAPI(c *fiber.Ctx) error {
	if err := database.DeleteMealPlan(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Meal plan not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete meal plan"})
	}
	return c.JSON(fiber.Map{"message": "Meal plan deleted successfully"})
}
