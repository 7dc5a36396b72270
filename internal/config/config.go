package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL        = "http://localhost:5000"
	DefaultTimeoutSeconds = 30
	DefaultLogLevel       = "info"
)

type Profile struct {
	BaseURL        string `json:"base_url" validate:"required,http_url"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=300"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	LogLevel       string             `json:"log_level,omitempty"`
	currentProfile *Profile
	logLevelEnv    string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func LoadConfig() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	config.applyEnvOverrides()

	return config, nil
}

// ValidateProfile checks a profile before it is saved or used
func ValidateProfile(p Profile) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

func (c *Config) IsValid() bool {
	return c.currentProfile != nil && ValidateProfile(*c.currentProfile) == nil
}

func (c *Config) GetBaseURL() string {
	if c.currentProfile == nil {
		return DefaultBaseURL
	}
	return c.currentProfile.BaseURL
}

func (c *Config) GetTimeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.TimeoutSeconds == 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.currentProfile.TimeoutSeconds) * time.Second
}

func (c *Config) GetLogLevel() string {
	if c.logLevelEnv != "" {
		return c.logLevelEnv
	}
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// Dir returns the directory holding config.json and the log file
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

func getConfigPath() (string, error) {
	var configDir string

	// Use CHAIRFINDER_HOME if set, otherwise use user's home directory
	if home := os.Getenv("CHAIRFINDER_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".chairfinder", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultProfile is the profile written on first run
func DefaultProfile() Profile {
	return Profile{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": DefaultProfile(),
		},
		ActiveProfile: "default",
		LogLevel:      DefaultLogLevel,
	}

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

// ProfileNames returns profile names in stable order
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name
		name := c.ProfileNames()[0]
		c.ActiveProfile = name
		profile = c.Profiles[name]
	}

	c.currentProfile = &profile
	return nil
}

// applyEnvOverrides lets CHAIRFINDER_* variables win over the file. Overrides
// live on the profile copy and logLevelEnv, so Save never persists them.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CHAIRFINDER_BASE_URL"); v != "" {
		c.currentProfile.BaseURL = v
	}
	if v := os.Getenv("CHAIRFINDER_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.currentProfile.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("CHAIRFINDER_LOG_LEVEL"); v != "" {
		c.logLevelEnv = v
	}
}
