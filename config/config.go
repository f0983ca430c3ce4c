package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	ServerPort         string
	DatabaseURL        string
	JWTSecret          string
	AdminAPIKey        string
	GatewayBaseURL     string
	GatewaySecretKey   string
	GatewayRedirectURL string
	PaymentCurrency    string
	PaymentTax         decimal.Decimal
}

// Load reads configuration from the environment (.env is optional). The
// payment gateway values are carried here and injected into the orchestrator
// at construction; nothing reads them from the environment at call sites.
func Load() *Config {
	_ = godotenv.Load()

	tax, err := decimal.NewFromString(getEnv("PAYMENT_TAX", "200.00"))
	if err != nil {
		tax = decimal.NewFromInt(200)
	}

	return &Config{
		ServerPort:         getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminAPIKey:        getEnv("ADMIN_API_KEY", ""),
		GatewayBaseURL:     getEnv("FLW_BASE_URL", "https://api.flutterwave.com/v3"),
		GatewaySecretKey:   getEnv("FLW_SECRET_KEY", ""),
		GatewayRedirectURL: getEnv("FLW_REDIRECT_URL", "http://localhost:5173/payment-status"),
		PaymentCurrency:    getEnv("PAYMENT_CURRENCY", "NGN"),
		PaymentTax:         tax,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
