package config

import "os"

// Configuration values read from the environment. Load must be called
// after godotenv has populated the process environment.
var (
	ServerPort string

	MysqlHost     string
	MysqlPort     string
	MysqlUser     string
	MysqlPassword string
	MysqlDB       string

	RedisAddr     string
	RedisPassword string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string

	JWTSecret string
	ClientUrl string

	DefaultOrganizerEmail    string
	DefaultOrganizerPassword string
)

// Load reads all configuration values from the environment
func Load() {
	ServerPort = getEnv("PORT", "5001")

	MysqlHost = getEnv("MYSQL_HOST", "localhost")
	MysqlPort = getEnv("MYSQL_PORT", "3306")
	MysqlUser = getEnv("MYSQL_USER", "root")
	MysqlPassword = getEnv("MYSQL_PASSWORD", "password")
	MysqlDB = getEnv("MYSQL_DB", "symposium_db")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	MailHost = getEnv("MAIL_HOST", "smtp.gmail.com")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "change-me")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")

	DefaultOrganizerEmail = getEnv("DEFAULT_ORGANIZER_EMAIL", "admin@admin.com")
	DefaultOrganizerPassword = getEnv("DEFAULT_ORGANIZER_PASSWORD", "")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
