package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	JWTKey    string
	SaltRound int

	RazorpayKeyID     string
	RazorpayKeySecret string

	EmailSender    string
	SendgridAPIKey string

	FrontendURL string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("APP_ENV", "development"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),

		EmailSender:    getEnv("EMAIL_SENDER", ""),
		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		FrontendURL: getEnv("FRONTEND_URL", "https://biology-trunk-client.vercel.app"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}

	// Gateway and mail credentials are checked lazily at first use; only log presence here
	log.Printf("Environment check: RAZORPAY_KEY_ID=%s RAZORPAY_KEY_SECRET=%s EMAIL_SENDER=%s SENDGRID_API_KEY=%s",
		setOrNot(AppConfig.RazorpayKeyID),
		setOrNot(AppConfig.RazorpayKeySecret),
		setOrNot(AppConfig.EmailSender),
		setOrNot(AppConfig.SendgridAPIKey),
	)
}

func setOrNot(value string) string {
	if value == "" {
		return "NOT SET"
	}
	return "SET"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
