package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/euisuk-chung/gemini-hak-creator-hub/pkg/rules"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig             `mapstructure:"server"`
	Database DatabaseConfig           `mapstructure:"database"`
	Redis    RedisConfig              `mapstructure:"redis"`
	YouTube  YouTubeConfig            `mapstructure:"youtube"`
	Gemini   GeminiConfig             `mapstructure:"gemini"`
	Analysis AnalysisConfig           `mapstructure:"analysis"`
	Rules    []map[string]interface{} `mapstructure:"rules"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl"`
}

type YouTubeConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// AnalysisConfig tunes the pipeline. Zero values fall back to the
// package defaults at wiring time.
type AnalysisConfig struct {
	MaxComments        int `mapstructure:"max_comments"`
	BatchSize          int `mapstructure:"batch_size"`
	PrescreenThreshold int `mapstructure:"prescreen_threshold"`
	MaliciousThreshold int `mapstructure:"malicious_threshold"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("⚠️ Warning: Could not load main config file: %v", err)
	}

	setDefaultValues()

	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Database.SSLMode == "" {
		globalConfig.Database.SSLMode = "disable"
	}
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 8080
	}
	if globalConfig.YouTube.BaseURL == "" {
		globalConfig.YouTube.BaseURL = "https://www.googleapis.com/youtube/v3"
	}
	if globalConfig.Gemini.Model == "" {
		globalConfig.Gemini.Model = "gemini-2.0-flash"
	}
}

func GetConfig() *Config {
	return &globalConfig
}

// RuleSpecs decodes the optional detection rule override. An empty
// rules section means the built-in rule set.
func (c *Config) RuleSpecs() ([]rules.RuleSpec, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}
	var specs []rules.RuleSpec
	if err := mapstructure.Decode(c.Rules, &specs); err != nil {
		return nil, fmt.Errorf("failed to decode rules config: %w", err)
	}
	return specs, nil
}
