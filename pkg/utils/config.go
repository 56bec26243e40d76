package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AMQP     AMQPConfig
	Session  SessionConfig
	OTP      OTPConfig
	Schedule ScheduleConfig
	Catalog  CatalogConfig
	Mail     MailConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host              string
	Port              string
	Name              string
	User              string
	Password          string
	SSLMode           string
	MaxConns          int32
	MigrationsEnabled bool
}

// RedisConfig is optional; an empty URL disables the catalog cache and
// keeps recent searches in memory.
type RedisConfig struct {
	URL string
}

// AMQPConfig is optional; an empty URL disables event publishing.
type AMQPConfig struct {
	URL      string
	Exchange string
}

type SessionConfig struct {
	ExpiryHours int
	BcryptCost  int
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

type ScheduleConfig struct {
	Timezone      string
	IncludeEndDay bool
}

type CatalogConfig struct {
	CacheTTL time.Duration
}

// MailConfig is optional; without a server token OTP codes are only logged.
type MailConfig struct {
	PostmarkServerToken  string
	PostmarkAccountToken string
	Sender               string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "club-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_MIGRATIONS_ENABLED", true)
	viper.SetDefault("AMQP_EXCHANGE", "club-booking")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("SCHEDULE_TIMEZONE", "UTC")
	viper.SetDefault("SCHEDULE_INCLUDE_END_DAY", true)
	viper.SetDefault("CATALOG_CACHE_TTL", "5m")

	// .env is optional, plain environment variables work too
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:              viper.GetString("DB_HOST"),
			Port:              viper.GetString("DB_PORT"),
			Name:              viper.GetString("DB_NAME"),
			User:              viper.GetString("DB_USER"),
			Password:          viper.GetString("DB_PASS"),
			SSLMode:           viper.GetString("DB_SSLMODE"),
			MaxConns:          viper.GetInt32("DB_MAX_CONNS"),
			MigrationsEnabled: viper.GetBool("DB_MIGRATIONS_ENABLED"),
		},
		Redis: RedisConfig{
			URL: viper.GetString("REDIS_URL"),
		},
		AMQP: AMQPConfig{
			URL:      viper.GetString("AMQP_URL"),
			Exchange: viper.GetString("AMQP_EXCHANGE"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			BcryptCost:  viper.GetInt("BCRYPT_COST"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Schedule: ScheduleConfig{
			Timezone:      viper.GetString("SCHEDULE_TIMEZONE"),
			IncludeEndDay: viper.GetBool("SCHEDULE_INCLUDE_END_DAY"),
		},
		Catalog: CatalogConfig{
			CacheTTL: viper.GetDuration("CATALOG_CACHE_TTL"),
		},
		Mail: MailConfig{
			PostmarkServerToken:  viper.GetString("POSTMARK_SERVER_TOKEN"),
			PostmarkAccountToken: viper.GetString("POSTMARK_ACCOUNT_TOKEN"),
			Sender:               viper.GetString("MAIL_SENDER"),
		},
	}

	return config, nil
}
