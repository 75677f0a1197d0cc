package services

import (
	"database/sql"
	"fmt"
	"log"

	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
)

// LogTermTransitions reports terms that started or ended today. Term
// status is derived from dates at read time, so there is nothing to
// write; this exists so operators see transitions in the logs.
func LogTermTransitions(db *sql.DB) error {
	terms, err := database.GetAcademicTerms(db)
	if err != nil {
		return fmt.Errorf("failed to query academic terms: %v", err)
	}

	for _, term := range terms {
		switch term.Status() {
		case models.TermActive:
			days := term.DaysRemaining()
			if days != nil {
				log.Printf("%s is active: %d day(s) remaining", term.Label(), *days)
			}
		case models.TermUpcoming:
			log.Printf("%s is upcoming (starts %s)", term.Label(), term.StartDate.Format("2006-01-02"))
		}
	}
	return nil
}
