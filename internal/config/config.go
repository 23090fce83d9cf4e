package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      App      `mapstructure:"app"`
	Gmail    Gmail    `mapstructure:"gmail"`
	AI       AI       `mapstructure:"ai"`
	Email    Email    `mapstructure:"email"`
	Template Template `mapstructure:"template"`
}

// App holds general application configuration
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	DataDir  string `mapstructure:"data_dir"`
}

// Gmail holds configuration for both Gmail accounts and the fetch window
type Gmail struct {
	Source       GmailAccount `mapstructure:"source"`
	Sender       GmailAccount `mapstructure:"sender"`
	LabelRoot    string       `mapstructure:"label_root"`
	MaxResults   int64        `mapstructure:"max_results"`
	LookbackDays int          `mapstructure:"lookback_days"`
}

// GmailAccount holds the credential material for one Gmail account
type GmailAccount struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	TokenFile       string `mapstructure:"token_file"`
}

// AI holds AI/LLM configuration
type AI struct {
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	Timeout   string `mapstructure:"timeout"`
	MaxTokens int32  `mapstructure:"max_tokens"`
}

// Email holds delivery configuration for the generated issue
type Email struct {
	SendTo string `mapstructure:"send_to"`
}

// Template holds issue template configuration
type Template struct {
	HeaderImage string `mapstructure:"header_image"`
}

var globalConfig *Config

// Load loads the configuration from various sources
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	// Configure viper
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".thedrop")
		viper.SetConfigType("yaml")
	}

	// Set defaults
	setDefaults()

	// Bind environment variables
	bindEnvironmentVariables()

	// Enable automatic environment variable reading
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into struct
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Apply post-processing
	if err := postProcessConfig(config); err != nil {
		return nil, fmt.Errorf("error post-processing config: %w", err)
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", ".thedrop")

	// Gmail defaults
	viper.SetDefault("gmail.source.credentials_file", "credentials-source.json")
	viper.SetDefault("gmail.source.token_file", "token-source.json")
	viper.SetDefault("gmail.sender.credentials_file", "credentials-sender.json")
	viper.SetDefault("gmail.sender.token_file", "token-sender.json")
	viper.SetDefault("gmail.label_root", "Newsletters")
	viper.SetDefault("gmail.max_results", 35)
	viper.SetDefault("gmail.lookback_days", 3)

	// AI defaults
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.timeout", "120s")
	viper.SetDefault("ai.gemini.max_tokens", 16000)

	// Template defaults
	viper.SetDefault("template.header_image", "https://raw.githubusercontent.com/r8slab/the-drop/main/assets/hero-background-wide.jpg")
}

// bindEnvironmentVariables sets up flexible environment variable binding
func bindEnvironmentVariables() {
	// Gemini API key - support multiple formats
	bindEnvKeys("ai.gemini.api_key", []string{
		"GEMINI_API_KEY",
		"GOOGLE_GEMINI_API_KEY",
		"GOOGLE_AI_API_KEY",
	})

	bindEnvKeys("ai.gemini.model", []string{
		"DROP_MODEL",
		"GEMINI_MODEL",
	})

	// Delivery
	bindEnvKeys("email.send_to", []string{
		"SEND_TO",
		"DROP_SEND_TO",
	})

	// Template
	bindEnvKeys("template.header_image", []string{
		"HEADER_BG_IMAGE",
	})

	// General settings
	bindEnvKeys("app.data_dir", []string{
		"DROP_DATA_DIR",
	})

	bindEnvKeys("app.debug", []string{
		"DEBUG",
		"DROP_DEBUG",
	})
}

// bindEnvKeys binds the first found environment variable to a viper key
func bindEnvKeys(viperKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(viperKey, value)
			return
		}
	}
}

// postProcessConfig applies post-processing to configuration values
func postProcessConfig(config *Config) error {
	// Expand paths
	if config.App.DataDir != "" {
		config.App.DataDir = expandPath(config.App.DataDir)
	}
	config.Gmail.Source.CredentialsFile = expandPath(config.Gmail.Source.CredentialsFile)
	config.Gmail.Source.TokenFile = expandPath(config.Gmail.Source.TokenFile)
	config.Gmail.Sender.CredentialsFile = expandPath(config.Gmail.Sender.CredentialsFile)
	config.Gmail.Sender.TokenFile = expandPath(config.Gmail.Sender.TokenFile)

	// Validate durations
	durations := map[string]string{
		"ai.gemini.timeout": config.AI.Gemini.Timeout,
	}

	for key, duration := range durations {
		if duration != "" {
			if _, err := time.ParseDuration(duration); err != nil {
				return fmt.Errorf("invalid duration for %s: %s", key, duration)
			}
		}
	}

	return nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// validateConfig ensures required configuration is present
func validateConfig(config *Config) error {
	var errors []string

	// Gemini API key is required for every generation run
	if !isValidAPIKey(config.AI.Gemini.APIKey) {
		errors = append(errors, "Gemini API key is required. Set GEMINI_API_KEY environment variable or ai.gemini.api_key in config file.\nGet your API key from: https://makersuite.google.com/app/apikey")
	}

	if config.Gmail.MaxResults <= 0 {
		errors = append(errors, fmt.Sprintf("gmail.max_results must be positive, got %d", config.Gmail.MaxResults))
	}

	if config.Gmail.LookbackDays <= 0 {
		errors = append(errors, fmt.Sprintf("gmail.lookback_days must be positive, got %d", config.Gmail.LookbackDays))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Convenience getters for commonly used configuration values
func GetApp() App           { return Get().App }
func GetGmail() Gmail       { return Get().Gmail }
func GetAI() AI             { return Get().AI }
func GetEmail() Email       { return Get().Email }
func GetTemplate() Template { return Get().Template }

// Specific convenience getters for frequently accessed values
func GetGeminiAPIKey() string { return Get().AI.Gemini.APIKey }
func GetGeminiModel() string  { return Get().AI.Gemini.Model }
func GetDataDir() string      { return Get().App.DataDir }
func GetSendTo() string       { return Get().Email.SendTo }
func GetLabelRoot() string    { return Get().Gmail.LabelRoot }
func GetHeaderImage() string  { return Get().Template.HeaderImage }
func IsDebugMode() bool       { return Get().App.Debug }

// isValidAPIKey checks if an API key is valid (not empty and not a placeholder)
func isValidAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}

	// Check for common placeholder values
	placeholders := []string{
		"your-api-key", "your-gemini-key", "YOUR_API_KEY",
		"PLACEHOLDER", "TODO", "CHANGE_ME",
	}

	for _, placeholder := range placeholders {
		if apiKey == placeholder {
			return false
		}
	}

	return true
}

// Reset clears the global configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viper.Reset()
}
