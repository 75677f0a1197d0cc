package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB   *sql.DB
	Site SiteConfig
	SMTP SMTPConfig
}

// SiteConfig carries the branding and host settings assembled once at
// process start.
type SiteConfig struct {
	Name         string
	Description  string
	ContactEmail string
	AllowedHosts []string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var AppConfig *Config

// getEnv returns the value of an environment variable, or the default
// when unset.
func getEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func InitDB() {
	// .env is a development convenience; deployed environments set real
	// variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "sparkplayhouse")
	sslmode := getEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s connect_timeout=60",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}
	log.Printf("Connecting to database %s at %s:%s", dbname, host, port)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatalf("Cannot establish database connection: %v", err)
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	AppConfig = &Config{
		DB: db,
		Site: SiteConfig{
			Name:         getEnv("SITE_NAME", "The Spark Playhouse"),
			Description:  getEnv("SITE_DESCRIPTION", "Moving Towards the Best"),
			ContactEmail: getEnv("CONTACT_EMAIL", "contact@thesparkplayhouse.info"),
			AllowedHosts: []string{
				"localhost",
				"www.thesparkplayhouse.info",
			},
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     smtpPort,
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "contact@thesparkplayhouse.info"),
		},
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// GetSite returns the static site configuration.
func GetSite() SiteConfig {
	return AppConfig.Site
}
