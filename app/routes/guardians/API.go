package guardians

import (
	"database/sql"
	"errors"

	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetGuardiansAPI(c *fiber.Ctx) error {
	guardians, err := database.GetGuardiansByLearner(config.GetDB(), c.Params("learner_id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch guardians"})
	}

	return c.JSON(fiber.Map{
		"guardians": guardians,
		"count":     len(guardians),
	})
}

func GetGuardianByIDAPI(c *fiber.Ctx) error {
	guardian, err := database.GetGuardianByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Guardian not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch guardian"})
	}
	return c.JSON(fiber.Map{"guardian": guardian})
}

func CreateGuardianAPI(c *fiber.Ctx) error {
	learner, err := database.GetLearnerByID(config.GetDB(), c.Params("learner_id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Learner not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch learner"})
	}

	type CreateGuardianRequest struct {
		Relationship string `form:"relationship" validate:"required,oneof=mother father guardian grandparent other"`
		FirstName    string `form:"first_name" validate:"required"`
		LastName     string `form:"last_name" validate:"required"`
		PhoneNumber  string `form:"phone_number" validate:"required"`
		Email        string `form:"email" validate:"omitempty,email"`
		Occupation   string `form:"occupation"`
		Workplace    string `form:"workplace"`
		IsPrimary    bool   `form:"is_primary_contact"`
		CanPickUp    bool   `form:"can_pick_up_student"`
	}

	var req CreateGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// The national ID upload is mandatory for guardian verification.
	file, err := c.FormFile("national_id_document")
	if err != nil || file == nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "A national ID document is required",
			"field": "national_id_document",
		})
	}
	idPath, err := storage.SaveUpload("national_id_document", "guardians/ids", file)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to store national ID document"})
	}

	guardian := &models.LearnerGuardian{
		LearnerID:          learner.ID,
		Relationship:       models.GuardianRelationship(req.Relationship),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		PhoneNumber:        req.PhoneNumber,
		NationalIDDocument: idPath,
		IsPrimaryContact:   req.IsPrimary,
		CanPickUpStudent:   req.CanPickUp,
	}
	if req.Email != "" {
		guardian.Email = &req.Email
	}
	if req.Occupation != "" {
		guardian.Occupation = &req.Occupation
	}
	if req.Workplace != "" {
		guardian.Workplace = &req.Workplace
	}

	if err := database.CreateGuardian(config.GetDB(), guardian); err != nil {
		storage.Remove(idPath)
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create guardian"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Guardian added successfully",
		"guardian": guardian,
	})
}

func UpdateGuardianAPI(c *fiber.Ctx) error {
	guardian, err := database.GetGuardianByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Guardian not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch guardian"})
	}

	type UpdateGuardianRequest struct {
		Relationship string `form:"relationship" validate:"omitempty,oneof=mother father guardian grandparent other"`
		FirstName    string `form:"first_name"`
		LastName     string `form:"last_name"`
		PhoneNumber  string `form:"phone_number"`
		Email        string `form:"email" validate:"omitempty,email"`
		Occupation   string `form:"occupation"`
		Workplace    string `form:"workplace"`
		IsPrimary    *bool  `form:"is_primary_contact"`
		CanPickUp    *bool  `form:"can_pick_up_student"`
	}

	var req UpdateGuardianRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Relationship != "" {
		guardian.Relationship = models.GuardianRelationship(req.Relationship)
	}
	if req.FirstName != "" {
		guardian.FirstName = req.FirstName
	}
	if req.LastName != "" {
		guardian.LastName = req.LastName
	}
	if req.PhoneNumber != "" {
		guardian.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		guardian.Email = &req.Email
	}
	if req.Occupation != "" {
		guardian.Occupation = &req.Occupation
	}
	if req.Workplace != "" {
		guardian.Workplace = &req.Workplace
	}
	if req.IsPrimary != nil {
		guardian.IsPrimaryContact = *req.IsPrimary
	}
	if req.CanPickUp != nil {
		guardian.CanPickUpStudent = *req.CanPickUp
	}

	if file, err := c.FormFile("national_id_document"); err == nil && file != nil {
		idPath, err := storage.SaveUpload("national_id_document", "guardians/ids", file)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to store national ID document"})
		}
		storage.Remove(guardian.NationalIDDocument)
		guardian.NationalIDDocument = idPath
	}

	if err := database.UpdateGuardian(config.GetDB(), guardian); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update guardian"})
	}

	return c.JSON(fiber.Map{
		"message":  "Guardian updated successfully",
		"guardian": guardian,
	})
}

func DeleteGuardianAPI(c *fiber.Ctx) error {
	if err := database.DeleteGuardian(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Guardian not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete guardian"})
	}
	return c.JSON(fiber.Map{"message": "Guardian removed successfully"})
}
