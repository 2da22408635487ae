package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Branch-wide account parameters.
	BranchCode             string
	CheckingLimit          decimal.Decimal
	CheckingMaxWithdrawals int

	// RateLimit is a ulule/limiter formatted rate, e.g. "120-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BRANCH_CODE", "0001")
	viper.SetDefault("CHECKING_LIMIT", "500")
	viper.SetDefault("CHECKING_MAX_WITHDRAWALS", 3)
	viper.SetDefault("RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                   viper.GetString("PORT"),
		IsProduction:           viper.GetBool("IS_PRODUCTION"),
		BranchCode:             viper.GetString("BRANCH_CODE"),
		CheckingMaxWithdrawals: viper.GetInt("CHECKING_MAX_WITHDRAWALS"),
		RateLimit:              viper.GetString("RATE_LIMIT"),
	}

	limitStr := viper.GetString("CHECKING_LIMIT")
	limit, err := decimal.NewFromString(limitStr)
	if err != nil || limit.LessThanOrEqual(decimal.Zero) {
		log.Printf("Warning: Invalid value for CHECKING_LIMIT (%q). Defaulting to 500.\n", limitStr)
		limit = decimal.NewFromInt(500)
	}
	cfg.CheckingLimit = limit

	if cfg.CheckingMaxWithdrawals <= 0 {
		log.Println("Warning: CHECKING_MAX_WITHDRAWALS must be positive. Defaulting to 3.")
		cfg.CheckingMaxWithdrawals = 3
	}

	return cfg, nil
}
