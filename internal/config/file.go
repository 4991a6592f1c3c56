package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file
type FileConfig struct {
	Environment string         `yaml:"environment" validate:"omitempty,oneof=local development test production"`
	LogLevel    string         `yaml:"logLevel" validate:"omitempty,oneof=trace debug info warn error"`
	Port        int            `yaml:"port" validate:"gte=0,lte=65535"`
	HTTP        HTTPConfig     `yaml:"http"`
	Provider    ProviderConfig `yaml:"provider"`
}

type HTTPConfig struct {
	Timeout    string `yaml:"timeout" validate:"omitempty"`
	MaxRetries int    `yaml:"maxRetries" validate:"gte=0,lte=10"`
}

type ProviderConfig struct {
	BaseURL  string `yaml:"baseURL" validate:"omitempty,url"`
	Contract string `yaml:"contract" validate:"omitempty,min=2"`
	APIKey   string `yaml:"apiKey" validate:"omitempty"`
}

// LoadFile reads, validates and converts a YAML config file into options
func LoadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return ParseFile(data)
}

func ParseFile(data []byte) ([]Option, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := validator.New().Struct(fc); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	var opts []Option
	if fc.Environment != "" {
		opts = append(opts, WithEnvironment(fc.Environment))
	}
	if fc.LogLevel != "" {
		opts = append(opts, WithLogLevel(fc.LogLevel))
	}
	if fc.HTTP.Timeout != "" {
		timeout, err := time.ParseDuration(fc.HTTP.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing http.timeout: %w", err)
		}
		opts = append(opts, WithHTTPTimeout(timeout))
	}
	opts = append(opts,
		WithMaxRetries(fc.HTTP.MaxRetries),
		WithProvider(fc.Provider.BaseURL, fc.Provider.Contract, fc.Provider.APIKey),
		WithPort(fc.Port),
	)

	return opts, nil
}
