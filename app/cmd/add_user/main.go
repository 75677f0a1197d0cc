package main

import (
	"flag"
	"fmt"
	"os"
	"spark-playhouse/app/config"
	"spark-playhouse/app/database"
	"spark-playhouse/app/models"
)

func main() {
	firstName := flag.String("first-name", "", "user's first name")
	lastName := flag.String("last-name", "", "user's last name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *firstName == "" || *lastName == "" || *email == "" || *password == "" {
		fmt.Println("Usage: add_user -first-name NAME -last-name NAME -email EMAIL -password PASSWORD")
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	user := &models.User{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  *password,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
