package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

const (
	DefaultConfigurationPath = "moving.yaml"
	ConfigurationPathEnv     = "MOVING_CONFIG"
)

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Owner    OwnerConfig    `yaml:"owner"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	ReportConfig  ReportConfig  `yaml:"report"`
}

// RequestConfig.SizeLimit is expressed in megabytes.
type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

// ReportConfig.Schedule is a cron expression; empty disables the scheduled report.
type ReportConfig struct {
	Schedule string `yaml:"schedule"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type OwnerConfig struct {
	DefaultID uint `yaml:"defaultId"`
}

// ConfigurationPath returns the file named by MOVING_CONFIG, or moving.yaml.
func ConfigurationPath() string {
	if path := os.Getenv(ConfigurationPathEnv); path != "" {
		return path
	}
	return DefaultConfigurationPath
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 1
	}
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "postgres"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "moving.db"
	}
	if c.Owner.DefaultID == 0 {
		c.Owner.DefaultID = 1
	}
}
