package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

type Config struct {
	Redis      RedisConfig      `yaml:"redis"`
	Shiprocket ShiprocketConfig `yaml:"shiprocket"`
	Shipgate   ShipgateConfig   `yaml:"shipgate"`
}

type RedisConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type ShiprocketConfig struct {
	BaseURL  string `yaml:"base_url"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type ShipgateConfig struct {
	HTTPAddr                string `yaml:"http_addr"`
	TrackingCacheTTLSeconds int    `yaml:"tracking_cache_ttl_seconds"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	// Креды можно (и нужно) переопределять окружением, а не хранить в файле.
	if v := os.Getenv("SHIPROCKET_EMAIL"); v != "" {
		config.Shiprocket.Email = v
	}
	if v := os.Getenv("SHIPROCKET_PASSWORD"); v != "" {
		config.Shiprocket.Password = v
	}

	return &config, nil
}
