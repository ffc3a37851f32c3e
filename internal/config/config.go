package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	PostgresURL string
	Redis       RedisConfig
	Minio       MinioConfig
	Upload      UploadConfig
	SMTP        SMTPConfig
	PayOS       PayOSConfig
	OpenAI      OpenAIConfig
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type UploadConfig struct {
	Dir       string
	MaxSizeMB int64
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	AppName    string
	AppBaseURL string
}

type PayOSConfig struct {
	ClientID    string
	APIKey      string
	ChecksumKey string
	ReturnURL   string
	CancelURL   string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Secrets come from the environment, never from the config file.
	cfg.PostgresURL = os.Getenv("POSTGRES_URL")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Minio.AccessKey = os.Getenv("MINIO_ACCESS_KEY")
	cfg.Minio.SecretKey = os.Getenv("MINIO_SECRET_KEY")
	cfg.SMTP.Username = os.Getenv("SMTP_USERNAME")
	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD")
	cfg.PayOS.ClientID = os.Getenv("PAYOS_CLIENT_ID")
	cfg.PayOS.APIKey = os.Getenv("PAYOS_API_KEY")
	cfg.PayOS.ChecksumKey = os.Getenv("PAYOS_CHECKSUM_KEY")
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")

	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = 10 * time.Second
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = 10 * time.Second
	}
	if cfg.Upload.Dir == "" {
		cfg.Upload.Dir = "uploads"
	}
	if cfg.Upload.MaxSizeMB == 0 {
		cfg.Upload.MaxSizeMB = 10
	}

	log.Info("config parsed")

	return cfg, nil
}
