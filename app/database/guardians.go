package database

import (
	"database/sql"
	"spark-playhouse/app/models"
)

// CreateGuardian inserts a parent/guardian record for a learner.
func CreateGuardian(db *sql.DB, guardian *models.LearnerGuardian) error {
	query := `INSERT INTO learner_guardians (learner_id, relationship, first_name, last_name,
			  phone_number, email, occupation, workplace, national_id_document,
			  is_primary_contact, can_pick_up_student, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, guardian.LearnerID, guardian.Relationship, guardian.FirstName,
		guardian.LastName, guardian.PhoneNumber, guardian.Email, guardian.Occupation,
		guardian.Workplace, guardian.NationalIDDocument, guardian.IsPrimaryContact,
		guardian.CanPickUpStudent).
		Scan(&guardian.ID, &guardian.CreatedAt, &guardian.UpdatedAt)
	return err
}

// UpdateGuardian persists edits to a guardian record.
func UpdateGuardian(db *sql.DB, guardian *models.LearnerGuardian) error {
	query := `UPDATE learner_guardians
			  SET relationship = $1, first_name = $2, last_name = $3, phone_number = $4,
				  email = $5, occupation = $6, workplace = $7, national_id_document = $8,
				  is_primary_contact = $9, can_pick_up_student = $10, updated_at = NOW()
			  WHERE id = $11`

	result, err := db.Exec(query, guardian.Relationship, guardian.FirstName, guardian.LastName,
		guardian.PhoneNumber, guardian.Email, guardian.Occupation, guardian.Workplace,
		guardian.NationalIDDocument, guardian.IsPrimaryContact, guardian.CanPickUpStudent,
		guardian.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetGuardiansByLearner lists a learner's guardians ordered by
// relationship then last name.
func GetGuardiansByLearner(db *sql.DB, learnerID string) ([]*models.LearnerGuardian, error) {
	query := `SELECT id, learner_id, relationship, first_name, last_name, phone_number,
			  email, occupation, workplace, national_id_document, is_primary_contact,
			  can_pick_up_student, created_at, updated_at
			  FROM learner_guardians WHERE learner_id = $1
			  ORDER BY relationship ASC, last_name ASC`

	rows, err := db.Query(query, learnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guardians []*models.LearnerGuardian
	for rows.Next() {
		g := &models.LearnerGuardian{}
		err := rows.Scan(&g.ID, &g.LearnerID, &g.Relationship, &g.FirstName, &g.LastName,
			&g.PhoneNumber, &g.Email, &g.Occupation, &g.Workplace, &g.NationalIDDocument,
			&g.IsPrimaryContact, &g.CanPickUpStudent, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, err
		}
		guardians = append(guardians, g)
	}
	if guardians == nil {
		guardians = []*models.LearnerGuardian{}
	}
	return guardians, rows.Err()
}

func GetGuardianByID(db *sql.DB, id string) (*models.LearnerGuardian, error) {
	g := &models.LearnerGuardian{}
	query := `SELECT id, learner_id, relationship, first_name, last_name, phone_number,
			  email, occupation, workplace, national_id_document, is_primary_contact,
			  can_pick_up_student, created_at, updated_at
			  FROM learner_guardians WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&g.ID, &g.LearnerID, &g.Relationship, &g.FirstName,
		&g.LastName, &g.PhoneNumber, &g.Email, &g.Occupation, &g.Workplace,
		&g.NationalIDDocument, &g.IsPrimaryContact, &g.CanPickUpStudent,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// DeleteGuardian removes a guardian record.
func DeleteGuardian(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM learner_guardians WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpsertMedicalInfo creates or replaces a learner's medical record.
// The learner_id unique constraint keeps it one-to-one.
func UpsertMedicalInfo(db *sql.DB, info *models.LearnerMedicalInfo) error {
	query := `INSERT INTO learner_medical_info (learner_id, allergies, medications, medical_conditions,
			  dietary_restrictions, medical_facility, emergency_contact_name, emergency_contact_phone,
			  secondary_emergency_contact, secondary_emergency_phone, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
			  ON CONFLICT (learner_id) DO UPDATE SET
				  allergies = EXCLUDED.allergies,
				  medications = EXCLUDED.medications,
				  medical_conditions = EXCLUDED.medical_conditions,
				  dietary_restrictions = EXCLUDED.dietary_restrictions,
				  medical_facility = EXCLUDED.medical_facility,
				  emergency_contact_name = EXCLUDED.emergency_contact_name,
				  emergency_contact_phone = EXCLUDED.emergency_contact_phone,
				  secondary_emergency_contact = EXCLUDED.secondary_emergency_contact,
				  secondary_emergency_phone = EXCLUDED.secondary_emergency_phone,
				  updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, info.LearnerID, info.Allergies, info.Medications,
		info.MedicalConditions, info.DietaryRestrictions, info.MedicalFacility,
		info.EmergencyContactName, info.EmergencyContactPhone,
		info.SecondaryEmergencyContact, info.SecondaryEmergencyPhone).
		Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt)
}

// GetMedicalInfoByLearner returns the learner's medical record, nil
// when none exists yet.
func GetMedicalInfoByLearner(db *sql.DB, learnerID string) (*models.LearnerMedicalInfo, error) {
	info := &models.LearnerMedicalInfo{}
	query := `SELECT id, learner_id, allergies, medications, medical_conditions, dietary_restrictions,
			  medical_facility, emergency_contact_name, emergency_contact_phone,
			  secondary_emergency_contact, secondary_emergency_phone, created_at, updated_at
			  FROM learner_medical_info WHERE learner_id = $1`

	err := db.QueryRow(query, learnerID).Scan(&info.ID, &info.LearnerID, &info.Allergies,
		&info.Medications, &info.MedicalConditions, &info.DietaryRestrictions,
		&info.MedicalFacility, &info.EmergencyContactName, &info.EmergencyContactPhone,
		&info.SecondaryEmergencyContact, &info.SecondaryEmergencyPhone,
		&info.CreatedAt, &info.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}

// UpsertAdditionalInfo creates or replaces a learner's additional
// information record.
func UpsertAdditionalInfo(db *sql.DB, info *models.LearnerAdditionalInformation) error {
	query := `INSERT INTO learner_additional_information (learner_id, referral_source, previous_school,
			  special_needs, additional_information, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  ON CONFLICT (learner_id) DO UPDATE SET
				  referral_source = EXCLUDED.referral_source,
				  previous_school = EXCLUDED.previous_school,
				  special_needs = EXCLUDED.special_needs,
				  additional_information = EXCLUDED.additional_information,
				  updated_at = NOW()
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, info.LearnerID, info.ReferralSource, info.PreviousSchool,
		info.SpecialNeeds, info.AdditionalInformation).
		Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt)
}

// GetAdditionalInfoByLearner returns the learner's additional info
// record, nil when none exists yet.
func GetAdditionalInfoByLearner(db *sql.DB, learnerID string) (*models.LearnerAdditionalInformation, error) {
	info := &models.LearnerAdditionalInformation{}
	query := `SELECT id, learner_id, referral_source, previous_school, special_needs,
			  additional_information, created_at, updated_at
			  FROM learner_additional_information WHERE learner_id = $1`

	err := db.QueryRow(query, learnerID).Scan(&info.ID, &info.LearnerID, &info.ReferralSource,
		&info.PreviousSchool, &info.SpecialNeeds, &info.AdditionalInformation,
		&info.CreatedAt, &info.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}
