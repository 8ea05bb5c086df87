package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Run modes accepted by --run.
const (
	RunCurrency = "currency"
	RunBanks    = "banks"
	RunAll      = "all"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string `validate:"required"`
	Port           string `validate:"required,numeric"`
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string `validate:"required"`

	CurrencyURL     string        `validate:"required,url"`
	BanksBaseURL    string        `validate:"required,url"`
	FeedHTTPTimeout time.Duration `validate:"gte=0"`

	CurrencySchedule string `validate:"required"`
	BanksSchedule    string `validate:"required"`
	Timezone         string `validate:"required"`

	JWTSecret          string `validate:"required"`
	RateLimit          string `validate:"required"`
	CORSAllowedOrigins []string

	// Run is set by --run; empty means serve the API and the schedule.
	Run string `validate:"omitempty,oneof=currency banks all"`

	location *time.Location
}

// Location returns the time zone schedules and business days are evaluated in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// LoadConfig loads configuration from command line flags, environment variables
// and a .env file if present, in that order of precedence.
func LoadConfig(args []string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CBR_CURRENCY_URL", "https://www.cbr.ru/scripts/XML_daily.asp")
	v.SetDefault("CBR_BANKS_BASE_URL", "https://www.cbr.ru/vfs/mcirabis/BIKNew/")
	v.SetDefault("FEED_HTTP_TIMEOUT", "0s")
	v.SetDefault("CURRENCY_SCHEDULE", "0 12 * * *")
	v.SetDefault("BANKS_SCHEDULE", "0 6 * * *")
	v.SetDefault("TIMEZONE", "Europe/Moscow")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RUN", "")
	v.AutomaticEnv()

	fs := pflag.NewFlagSet("cbr_loader", pflag.ContinueOnError)
	fs.String("run", "", "run one load (currency, banks or all) and exit")
	fs.String("port", "", "HTTP port of the API")
	fs.String("migrations-path", "", "golang-migrate source URL")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid command line: %w", err)
	}
	for key, flag := range map[string]string{"RUN": "run", "PORT": "port", "MIGRATIONS_PATH": "migrations-path"} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		CurrencyURL:        v.GetString("CBR_CURRENCY_URL"),
		BanksBaseURL:       v.GetString("CBR_BANKS_BASE_URL"),
		FeedHTTPTimeout:    v.GetDuration("FEED_HTTP_TIMEOUT"),
		CurrencySchedule:   v.GetString("CURRENCY_SCHEDULE"),
		BanksSchedule:      v.GetString("BANKS_SCHEDULE"),
		Timezone:           v.GetString("TIMEZONE"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Run:                strings.ToLower(strings.TrimSpace(v.GetString("RUN"))),
	}

	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
