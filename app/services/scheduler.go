package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 6:05 AM, before the school day starts
			if now.Hour() == 6 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [06:05]...")

				if err := LogTermTransitions(db); err != nil {
					log.Printf("Error checking term transitions: %v", err)
				}
			}
		}
	}()
}
