package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		HTTP       `yaml:"http"`
		GRPC       `yaml:"grpc"`
		Prometheus `yaml:"prometheus"`
		Gateway    `yaml:"gateway"`
		Session    `yaml:"session"`
		Logs       `yaml:"logs"`
		Usage      `yaml:"usage"`
		Kafka      `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	}

	HTTP struct {
		Port            string        `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"3s"`
	}

	GRPC struct {
		Port string `env-required:"true" yaml:"port" env:"GRPC_PORT"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	Gateway struct {
		BaseURL      string        `env-required:"true" yaml:"base_url" env:"GATEWAY_BASE_URL"`
		Timeout      time.Duration `yaml:"timeout" env:"GATEWAY_TIMEOUT" env-default:"10s"`
		AuthHeader   string        `yaml:"auth_header" env:"GATEWAY_AUTH_HEADER" env-default:"X-API-KEY"`
		ValidatePath string        `yaml:"validate_path" env:"GATEWAY_VALIDATE_PATH" env-default:"/auth/verify-api-key"`
	}

	Session struct {
		Driver   string `yaml:"driver" env:"SESSION_DRIVER" env-default:"file"`
		FilePath string `yaml:"file_path" env:"SESSION_FILE_PATH" env-default:"data/session.yaml"`
		Redis    Redis  `yaml:"redis"`
	}

	Redis struct {
		Addr     string `yaml:"addr" env:"SESSION_REDIS_ADDR"`
		Username string `yaml:"username" env:"SESSION_REDIS_USERNAME"`
		Password string `yaml:"password" env:"SESSION_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"SESSION_REDIS_DB" env-default:"0"`
		Key      string `yaml:"key" env:"SESSION_REDIS_KEY" env-default:"console:session"`
	}

	Logs struct {
		PageSize int `yaml:"page_size" env:"LOGS_PAGE_SIZE" env-default:"15"`
	}

	Usage struct {
		PollInterval time.Duration `yaml:"poll_interval" env:"USAGE_POLL_INTERVAL" env-default:"5s"`
	}

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"console.session-audit"`
	}
)

const (
	ENV_PATH            = "infra/.env.dev"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

// New loads the optional env file, then the YAML config with environment
// overrides on top.
func New() (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errorsUtils.WrapPathErr(err)
	}

	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}

	return Load(pathToConfig)
}

func Load(path string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
