package database

import (
	"database/sql"
	"fmt"
	"time"

	"spark-playhouse/app/models"
)

// GenerateStudentID builds the next learner ID for a year/class-code
// prefix: 2-digit admission year + 3-letter uppercase class code +
// 3-digit sequence. The sequence is the count of existing IDs sharing
// the prefix, plus one. It must run inside the insert transaction after
// lockStudentIDPrefix so concurrent admissions cannot draw the same
// number.
func GenerateStudentID(tx *sql.Tx, prefix string) (string, error) {
	var count int
	query := `SELECT COUNT(*) FROM learners WHERE student_id LIKE $1`
	if err := tx.QueryRow(query, prefix+"%").Scan(&count); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, count+1), nil
}

// studentIDPrefix derives the ID prefix from the admission year (current
// year when unset) and the class level's raw enumeration key.
func studentIDPrefix(level *models.ClassLevel, admission time.Time) string {
	year := admission.Year()
	if admission.IsZero() {
		year = time.Now().Year()
	}
	return fmt.Sprintf("%02d%s", year%100, level.ClassCode())
}

// lockStudentIDPrefix serializes ID generation per (year, class code)
// key for the remainder of the transaction. The count-then-insert
// counter is racy without this lock.
func lockStudentIDPrefix(tx *sql.Tx, prefix string) error {
	_, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, prefix)
	return err
}

// CreateLearner inserts a learner, generating a student ID when none
// was supplied. AdmissionDate defaults to today and is set exactly
// once.
func CreateLearner(db *sql.DB, learner *models.Learner) error {
	level, err := GetClassLevelByID(db, learner.ClassLevelID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewValidationError("class_level_id", "The selected class level does not exist.")
		}
		return err
	}
	learner.ClassLevel = level

	if learner.AdmissionDate.IsZero() {
		now := time.Now()
		learner.AdmissionDate = models.Date(now.Year(), now.Month(), now.Day())
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if learner.StudentID == "" {
		prefix := studentIDPrefix(level, learner.AdmissionDate.Time)
		if err := lockStudentIDPrefix(tx, prefix); err != nil {
			return err
		}
		learner.StudentID, err = GenerateStudentID(tx, prefix)
		if err != nil {
			return err
		}
	}

	query := `INSERT INTO learners (class_level_id, first_name, last_name, middle_name, date_of_birth,
			  gender, birth_certificate, admission_date, student_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query, learner.ClassLevelID, learner.FirstName, learner.LastName,
		learner.MiddleName, learner.DateOfBirth, learner.Gender, learner.BirthCertificate,
		learner.AdmissionDate, learner.StudentID, learner.IsActive).
		Scan(&learner.ID, &learner.CreatedAt, &learner.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.NewValidationError("student_id", "A learner with this student ID already exists.")
		}
		return err
	}

	return tx.Commit()
}

// UpdateLearner persists edits to a learner. The student ID is never
// recomputed; the admission date is never changed after creation.
func UpdateLearner(db *sql.DB, learner *models.Learner) error {
	query := `UPDATE learners
			  SET class_level_id = $1, first_name = $2, last_name = $3, middle_name = $4,
				  date_of_birth = $5, gender = $6, birth_certificate = $7, is_active = $8,
				  updated_at = NOW()
			  WHERE id = $9`

	result, err := db.Exec(query, learner.ClassLevelID, learner.FirstName, learner.LastName,
		learner.MiddleName, learner.DateOfBirth, learner.Gender, learner.BirthCertificate,
		learner.IsActive, learner.ID)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const learnerColumns = `l.id, l.class_level_id, l.first_name, l.last_name, l.middle_name,
			  l.date_of_birth, l.gender, l.birth_certificate, l.admission_date, l.student_id,
			  l.is_active, l.created_at, l.updated_at`

func scanLearner(row interface{ Scan(...interface{}) error }, learner *models.Learner) error {
	return row.Scan(&learner.ID, &learner.ClassLevelID, &learner.FirstName, &learner.LastName,
		&learner.MiddleName, &learner.DateOfBirth, &learner.Gender, &learner.BirthCertificate,
		&learner.AdmissionDate, &learner.StudentID, &learner.IsActive,
		&learner.CreatedAt, &learner.UpdatedAt)
}

// GetLearners lists learners in class progression order, then by name.
func GetLearners(db *sql.DB) ([]*models.Learner, error) {
	query := `SELECT ` + learnerColumns + `,
			  cl.id, cl.name, cl.description, cl.class_order, cl.age_criteria, cl.admission_fee, cl.assessment_fee, cl.created_at, cl.updated_at
			  FROM learners l
			  JOIN class_levels cl ON l.class_level_id = cl.id
			  ORDER BY cl.class_order ASC, l.last_name ASC, l.first_name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var learners []*models.Learner
	for rows.Next() {
		learner := &models.Learner{ClassLevel: &models.ClassLevel{}}
		cl := learner.ClassLevel
		err := rows.Scan(&learner.ID, &learner.ClassLevelID, &learner.FirstName, &learner.LastName,
			&learner.MiddleName, &learner.DateOfBirth, &learner.Gender, &learner.BirthCertificate,
			&learner.AdmissionDate, &learner.StudentID, &learner.IsActive,
			&learner.CreatedAt, &learner.UpdatedAt,
			&cl.ID, &cl.Name, &cl.Description, &cl.ClassOrder, &cl.AgeCriteria,
			&cl.AdmissionFee, &cl.AssessmentFee, &cl.CreatedAt, &cl.UpdatedAt)
		if err != nil {
			return nil, err
		}
		learners = append(learners, learner)
	}
	if learners == nil {
		learners = []*models.Learner{}
	}
	return learners, rows.Err()
}

// GetLearnerByID loads a learner with class level, guardians, medical
// and additional info attached.
func GetLearnerByID(db *sql.DB, id string) (*models.Learner, error) {
	learner := &models.Learner{}
	query := `SELECT ` + learnerColumns + ` FROM learners l WHERE l.id = $1`
	if err := scanLearner(db.QueryRow(query, id), learner); err != nil {
		return nil, err
	}

	level, err := GetClassLevelByID(db, learner.ClassLevelID)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	learner.ClassLevel = level

	guardians, err := GetGuardiansByLearner(db, learner.ID)
	if err != nil {
		return nil, err
	}
	learner.Guardians = guardians

	medical, err := GetMedicalInfoByLearner(db, learner.ID)
	if err != nil {
		return nil, err
	}
	learner.MedicalInfo = medical

	additional, err := GetAdditionalInfoByLearner(db, learner.ID)
	if err != nil {
		return nil, err
	}
	learner.AdditionalInfo = additional

	return learner, nil
}

// DeleteLearner removes a learner; guardians, medical and additional
// records cascade.
func DeleteLearner(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM learners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetLearnerTermFees computes what a learner owes for a term: the
// schedule total for their class level, plus the one-time admission and
// assessment fees when the term contains the admission date. Returns
// nil without error when no fee schedule is defined for the pair —
// callers must branch on presence rather than treat it as zero.
func GetLearnerTermFees(db *sql.DB, learner *models.Learner, term *models.AcademicTerm) (*models.LearnerTermFees, error) {
	fees, err := GetClassTermFeesForPair(db, learner.ClassLevelID, term.ID)
	if err != nil {
		return nil, err
	}
	if fees == nil {
		return nil, nil
	}

	result := &models.LearnerTermFees{
		LearnerID:       learner.ID,
		StudentID:       learner.StudentID,
		TermID:          term.ID,
		ScheduleTotal:   fees.TotalFees(),
		IsAdmissionTerm: learner.IsAdmissionTerm(term),
	}
	result.Total = learner.TermFees(fees, term)
	result.OneTimeFees = result.Total.Sub(result.ScheduleTotal)
	return result, nil
}
