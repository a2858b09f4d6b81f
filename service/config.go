package service

import (
	"os"
	"strconv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	SMTP struct {
		Host  string
		Port  int
		Login string
		Key   string
		From  string
	}

	Reminder struct {
		CartURL  string
		LogoPath string
	}

	Admin struct {
		Username string
		Password string
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "https://yusufakin.online"),
		DBPath:      getEnv("DB_PATH", "./db/eticaret.db"),
	}

	// SMTP
	config.SMTP.Host = getEnv("SMTP_HOST", "")
	if port, err := strconv.Atoi(getEnv("SMTP_PORT", "587")); err == nil {
		config.SMTP.Port = port
	} else {
		config.SMTP.Port = 587
	}
	config.SMTP.Login = getEnv("SMTP_LOGIN", "")
	config.SMTP.Key = getEnv("SMTP_KEY", "")
	config.SMTP.From = getEnv("EMAIL_FROM", "noreply@yusufakin.online")

	// Reminder
	config.Reminder.CartURL = getEnv("CART_URL", config.BaseURL+"/cart")
	config.Reminder.LogoPath = getEnv("LOGO_PATH", "./assets/logo.png")

	// Admin
	config.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	config.Admin.Password = getEnv("ADMIN_PASSWORD", "password")

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
