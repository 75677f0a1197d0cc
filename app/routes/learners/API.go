package learners

import (
	"database/sql"
	"errors"
	"time"

	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
	"spark-playhouse/app/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// learnerResponse flattens a learner with its derived fields for the
// API. Age criteria are evaluated against June 1st of the current year.
func learnerResponse(learner *models.Learner) fiber.Map {
	resp := fiber.Map{
		"learner":            learner,
		"full_name":          learner.FullName(),
		"age":                learner.Age(),
		"age_by_june_first":  learner.AgeByJuneFirst(0),
		"meets_age_criteria": learner.MeetsAgeCriteria(),
	}
	if learner.ClassLevel != nil {
		resp["class_label"] = learner.ClassLevel.Label()
	}
	return resp
}

func GetLearnersAPI(c *fiber.Ctx) error {
	learnerList, err := database.GetLearners(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch learners"})
	}

	responses := make([]fiber.Map, 0, len(learnerList))
	for _, learner := range learnerList {
		responses = append(responses, learnerResponse(learner))
	}

	return c.JSON(fiber.Map{
		"learners": responses,
		"count":    len(responses),
	})
}

func GetLearnerByIDAPI(c *fiber.Ctx) error {
	learner, err := database.GetLearnerByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Learner not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch learner"})
	}

	resp := learnerResponse(learner)
	resp["guardians"] = learner.Guardians
	resp["medical_info"] = learner.MedicalInfo
	resp["additional_info"] = learner.AdditionalInfo
	return c.JSON(resp)
}

func CreateLearnerAPI(c *fiber.Ctx) error {
	type CreateLearnerRequest struct {
		ClassLevelID  string `form:"class_level_id" validate:"required,uuid"`
		FirstName     string `form:"first_name" validate:"required"`
		LastName      string `form:"last_name" validate:"required"`
		MiddleName    string `form:"middle_name"`
		DateOfBirth   string `form:"date_of_birth" validate:"required"`
		Gender        string `form:"gender" validate:"required,oneof=male female"`
		AdmissionDate string `form:"admission_date"`
	}

	var req CreateLearnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth, expected YYYY-MM-DD", "field": "date_of_birth"})
	}

	learner := &models.Learner{
		ClassLevelID: req.ClassLevelID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  models.CustomDate{Time: dob},
		Gender:       models.Gender(req.Gender),
		IsActive:     true,
	}
	if req.MiddleName != "" {
		learner.MiddleName = &req.MiddleName
	}
	if req.AdmissionDate != "" {
		admission, err := time.Parse("2006-01-02", req.AdmissionDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid admission date, expected YYYY-MM-DD", "field": "admission_date"})
		}
		learner.AdmissionDate = models.CustomDate{Time: admission}
	}

	// Birth certificate is optional at registration.
	if file, err := c.FormFile("birth_certificate"); err == nil && file != nil {
		path, err := storage.SaveUpload("birth_certificate", "learners/birth_certificates", file)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to store birth certificate"})
		}
		learner.BirthCertificate = &path
	}

	if err := database.CreateLearner(config.GetDB(), learner); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create learner"})
	}

	// Reload so the class level is attached for the derived fields.
	created, err := database.GetLearnerByID(config.GetDB(), learner.ID)
	if err == nil {
		learner = created
	}

	resp := learnerResponse(learner)
	resp["message"] = "Learner registered successfully"
	resp["student_id"] = learner.StudentID
	return c.Status(201).JSON(resp)
}

func UpdateLearnerAPI(c *fiber.Ctx) error {
	learner, err := database.GetLearnerByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Learner not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch learner"})
	}

	type UpdateLearnerRequest struct {
		ClassLevelID string `form:"class_level_id" validate:"omitempty,uuid"`
		FirstName    string `form:"first_name"`
		LastName     string `form:"last_name"`
		MiddleName   string `form:"middle_name"`
		DateOfBirth  string `form:"date_of_birth"`
		Gender       string `form:"gender" validate:"omitempty,oneof=male female"`
		IsActive     *bool  `form:"is_active"`
	}

	var req UpdateLearnerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.ClassLevelID != "" {
		learner.ClassLevelID = req.ClassLevelID
	}
	if req.FirstName != "" {
		learner.FirstName = req.FirstName
	}
	if req.LastName != "" {
		learner.LastName = req.LastName
	}
	if req.MiddleName != "" {
		learner.MiddleName = &req.MiddleName
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date of birth, expected YYYY-MM-DD", "field": "date_of_birth"})
		}
		learner.DateOfBirth = models.CustomDate{Time: dob}
	}
	if req.Gender != "" {
		learner.Gender = models.Gender(req.Gender)
	}
	if req.IsActive != nil {
		learner.IsActive = *req.IsActive
	}

	if file, err := c.FormFile("birth_certificate"); err == nil && file != nil {
		path, err := storage.SaveUpload("birth_certificate", "learners/birth_certificates", file)
		if err != nil {
			var vErr *models.ValidationError
			if errors.As(err, &vErr) {
				return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to store birth certificate"})
		}
		if learner.BirthCertificate != nil {
			storage.Remove(*learner.BirthCertificate)
		}
		learner.BirthCertificate = &path
	}

	if err := database.UpdateLearner(config.GetDB(), learner); err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(400).JSON(fiber.Map{"error": vErr.Message, "field": vErr.Field})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update learner"})
	}

	resp := learnerResponse(learner)
	resp["message"] = "Learner updated successfully"
	return c.JSON(resp)
}

func DeleteLearnerAPI(c *fiber.Ctx) error {
	if err := database.DeleteLearner(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Learner not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete learner"})
	}
	return c.JSON(fiber.Map{"message": "Learner deleted successfully"})
}

// GetLearnerTermFeesAPI returns the fee breakdown for one learner in a
// term. The term defaults to the currently active one; pass ?term_id=
// to pick another. A learner with no fee schedule for the term gets a
// 404, not a zero total.
func GetLearnerTermFeesAPI(c *fiber.Ctx) error {
	learner, err := database.GetLearnerByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Learner not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch learner"})
	}

	var term *models.AcademicTerm
	if termID := c.Query("term_id"); termID != "" {
		term, err = database.GetAcademicTermByID(config.GetDB(), termID)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"error": "Academic term not found"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch academic term"})
		}
	} else {
		term, err = database.GetActiveTerm(config.GetDB())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch current term"})
		}
		if term == nil {
			return c.Status(404).JSON(fiber.Map{"error": "No academic term is currently active"})
		}
	}

	breakdown, err := database.GetLearnerTermFees(config.GetDB(), learner, term)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute term fees"})
	}
	if breakdown == nil {
		return c.Status(404).JSON(fiber.Map{
			"error": "No fee schedule is defined for this learner's class level and term",
		})
	}

	return c.JSON(fiber.Map{
		"term":      term.Label(),
		"term_fees": breakdown,
	})
}

func UpsertMedicalInfoAPI(c *fiber.Ctx) error {
	learner, err := database.GetLearnerByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Learner not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch learner"})
	}

	type MedicalInfoRequest struct {
		Allergies                 string `json:"allergies"`
		Medications               string `json:"medications"`
		MedicalConditions         string `json:"medical_conditions"`
		DietaryRestrictions       string `json:"dietary_restrictions"`
		MedicalFacility           string `json:"medical_facility"`
		EmergencyContactName      string `json:"emergency_contact_name" validate:"required"`
		EmergencyContactPhone     string `json:"emergency_contact_phone" validate:"required"`
		SecondaryEmergencyContact string `json:"secondary_emergency_contact"`
		SecondaryEmergencyPhone   string `json:"secondary_emergency_phone"`
	}

	var req MedicalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	info := &models.LearnerMedicalInfo{
		LearnerID:                 learner.ID,
		Allergies:                 req.Allergies,
		Medications:               req.Medications,
		MedicalConditions:         req.MedicalConditions,
		DietaryRestrictions:       req.DietaryRestrictions,
		MedicalFacility:           req.MedicalFacility,
		EmergencyContactName:      req.EmergencyContactName,
		EmergencyContactPhone:     req.EmergencyContactPhone,
		SecondaryEmergencyContact: req.SecondaryEmergencyContact,
		SecondaryEmergencyPhone:   req.SecondaryEmergencyPhone,
	}

	if err := database.UpsertMedicalInfo(config.GetDB(), info); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save medical information"})
	}

	return c.JSON(fiber.Map{
		"message":      "Medical information saved successfully",
		"medical_info": info,
	})
}

func UpsertAdditionalInfoAPI(c *fiber.Ctx) error {
	learner, err := database.GetLearnerByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Learner not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch learner"})
	}

	type AdditionalInfoRequest struct {
		ReferralSource        string `json:"referral_source"`
		PreviousSchool        string `json:"previous_school"`
		SpecialNeeds          string `json:"special_needs"`
		AdditionalInformation string `json:"additional_information"`
	}

	var req AdditionalInfoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	info := &models.LearnerAdditionalInformation{
		LearnerID:             learner.ID,
		ReferralSource:        req.ReferralSource,
		PreviousSchool:        req.PreviousSchool,
		SpecialNeeds:          req.SpecialNeeds,
		AdditionalInformation: req.AdditionalInformation,
	}

	if err := database.UpsertAdditionalInfo(config.GetDB(), info); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save additional information"})
	}

	return c.JSON(fiber.Map{
		"message":         "Additional information saved successfully",
		"additional_info": info,
	})
}
