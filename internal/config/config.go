package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv     string
	ServerAddr string
	DatabaseDSN string

	JWT    JWTConfig
	Redis  RedisConfig
	MinIO  MinIOConfig
	Twilio TwilioConfig

	// OTPMode selects the verifier: "twilio", "redis" or "dev".
	OTPMode    string
	DevOTPCode string

	CORSOrigins []string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	OTPTTL   time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	ServiceSID string
}

// Load reads .env first, then an optional toml config file, with environment
// variables taking precedence over both.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	configName := "config"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logrus.Debug("no config file found, using env only")
	}

	v.SetDefault("app_env", "dev")
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("database_dsn", "file::memory:?cache=shared")
	v.SetDefault("jwt_secret", "change-me")
	v.SetDefault("jwt_ttl", "72h")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("otp_ttl", "5m")
	v.SetDefault("otp_mode", "dev")
	v.SetDefault("dev_otp_code", "000000")
	v.SetDefault("minio_bucket", "photoorders")
	v.SetDefault("cors_origins", "*")

	cfg := &Config{
		AppEnv:      strings.ToLower(v.GetString("app_env")),
		ServerAddr:  v.GetString("server_addr"),
		DatabaseDSN: v.GetString("database_dsn"),
		JWT: JWTConfig{
			Secret: v.GetString("jwt_secret"),
			TTL:    v.GetDuration("jwt_ttl"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
			OTPTTL:   v.GetDuration("otp_ttl"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("minio_endpoint"),
			AccessKey: v.GetString("minio_access_key"),
			SecretKey: v.GetString("minio_secret_key"),
			Bucket:    v.GetString("minio_bucket"),
			UseSSL:    v.GetBool("minio_use_ssl"),
		},
		Twilio: TwilioConfig{
			AccountSID: v.GetString("twilio_account_sid"),
			AuthToken:  v.GetString("twilio_auth_token"),
			ServiceSID: v.GetString("twilio_service_sid"),
		},
		OTPMode:     strings.ToLower(v.GetString("otp_mode")),
		DevOTPCode:  v.GetString("dev_otp_code"),
		CORSOrigins: strings.Split(v.GetString("cors_origins"), ","),
	}

	if cfg.AppEnv == "prod" && cfg.JWT.Secret == "change-me" {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}
