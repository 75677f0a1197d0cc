package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS class_levels (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			class_order INTEGER NOT NULL,
			age_criteria INTEGER,
			admission_fee NUMERIC(10,2) NOT NULL,
			assessment_fee NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS academic_terms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			year INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS class_term_fees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_level_id UUID NOT NULL REFERENCES class_levels(id) ON DELETE CASCADE,
			academic_term_id UUID NOT NULL REFERENCES academic_terms(id) ON DELETE CASCADE,
			tuition_fee NUMERIC(10,2) NOT NULL,
			meal_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			activity_fee NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (class_level_id, academic_term_id)
		)`,

		`CREATE TABLE IF NOT EXISTS learners (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_level_id UUID NOT NULL REFERENCES class_levels(id) ON DELETE CASCADE,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			middle_name VARCHAR(100),
			date_of_birth DATE NOT NULL,
			gender VARCHAR(10) NOT NULL,
			birth_certificate VARCHAR(255),
			admission_date DATE NOT NULL,
			student_id VARCHAR(20) UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS learner_medical_info (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			learner_id UUID UNIQUE NOT NULL REFERENCES learners(id) ON DELETE CASCADE,
			allergies TEXT NOT NULL DEFAULT '',
			medications TEXT NOT NULL DEFAULT '',
			medical_conditions TEXT NOT NULL DEFAULT '',
			dietary_restrictions TEXT NOT NULL DEFAULT '',
			medical_facility VARCHAR(200) NOT NULL DEFAULT '',
			emergency_contact_name VARCHAR(100) NOT NULL,
			emergency_contact_phone VARCHAR(15) NOT NULL,
			secondary_emergency_contact VARCHAR(100) NOT NULL DEFAULT '',
			secondary_emergency_phone VARCHAR(15) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS learner_additional_information (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			learner_id UUID UNIQUE NOT NULL REFERENCES learners(id) ON DELETE CASCADE,
			referral_source TEXT NOT NULL DEFAULT '',
			previous_school VARCHAR(200) NOT NULL DEFAULT '',
			special_needs TEXT NOT NULL DEFAULT '',
			additional_information TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS learner_guardians (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			learner_id UUID NOT NULL REFERENCES learners(id) ON DELETE CASCADE,
			relationship VARCHAR(20) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone_number VARCHAR(15) NOT NULL,
			email VARCHAR(255),
			occupation VARCHAR(100),
			workplace VARCHAR(200),
			national_id_document VARCHAR(255) NOT NULL,
			is_primary_contact BOOLEAN NOT NULL DEFAULT false,
			can_pick_up_student BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS meal_plans (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			plan_type VARCHAR(20) NOT NULL,
			day VARCHAR(20) NOT NULL,
			morning_snack VARCHAR(200) NOT NULL,
			lunch VARCHAR(200) NOT NULL,
			evening_snack VARCHAR(200) NOT NULL,
			special_notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (plan_type, day)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_learners_class_level ON learners(class_level_id)`,
		`CREATE INDEX IF NOT EXISTS idx_learner_guardians_learner ON learner_guardians(learner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_class_term_fees_term ON class_term_fees(academic_term_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
