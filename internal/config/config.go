package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env      string         `yaml:"env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	CoreAPI  CoreAPIConfig  `yaml:"core_api"`
	Identity IdentityConfig `yaml:"identity"`
	Redis    RedisConfig    `yaml:"redis"`
	Queues   QueuesConfig   `yaml:"queues"`
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type CoreAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type IdentityConfig struct {
	BaseURL string        `yaml:"base_url"`
	AnonKey string        `yaml:"anon_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type QueuesConfig struct {
	SearchDebounce time.Duration `yaml:"search_debounce"`
	PageSize       int           `yaml:"page_size"`
}

func Load(path string) (Config, error) {
	cfg := defaults()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Env: "dev",
		HTTP: HTTPConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Log: LogConfig{Level: "info"},
		CoreAPI: CoreAPIConfig{
			Timeout: 15 * time.Second,
		},
		Identity: IdentityConfig{
			Timeout: 10 * time.Second,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Queues: QueuesConfig{
			SearchDebounce: 300 * time.Millisecond,
			PageSize:       50,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := getEnv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getEnv("CORE_API_URL"); v != "" {
		cfg.CoreAPI.BaseURL = v
	}
	if v := getEnv("IDENTITY_URL"); v != "" {
		cfg.Identity.BaseURL = v
	}
	if v := getEnv("IDENTITY_ANON_KEY"); v != "" {
		cfg.Identity.AnonKey = v
	}
	if v := getEnv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := getEnv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (c Config) validate() error {
	if strings.TrimSpace(c.CoreAPI.BaseURL) == "" {
		return errors.New("core_api.base_url is required (or CORE_API_URL)")
	}
	if strings.TrimSpace(c.Identity.BaseURL) == "" {
		return errors.New("identity.base_url is required (or IDENTITY_URL)")
	}
	return nil
}
