package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	domainconfig "socialgraph/domain/config"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics  bool     `yaml:"enable_metrics"`
	EnableCORS     bool     `yaml:"enable_cors"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// WriteRateLimit caps POST requests per client IP per minute. 0 disables it.
	WriteRateLimit int `yaml:"write_rate_limit"`

	// Network rules. Nil pointers fall back to the environment preset.
	AllowSelfFriendship *bool `yaml:"allow_self_friendship"`
	MaxPeople           *int  `yaml:"max_people"`
	MaxFriendsPerPerson *int  `yaml:"max_friends_per_person"`

	// ConfigFile is the YAML file the values were overlaid from, if any
	ConfigFile string `yaml:"-"`
}

// defaultConfig returns the configuration used when nothing is set
func defaultConfig() *Config {
	return &Config{
		ServerAddress:  ":8080",
		Environment:    "development",
		LogLevel:       "info",
		EnableMetrics:  true,
		EnableCORS:     true,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
}

// LoadConfig loads configuration from an optional YAML file and environment variables.
// Precedence, lowest first: defaults, CONFIG_FILE, environment.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

func (c *Config) applyEnv() error {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}
	if os.Getenv("ALLOW_SELF_FRIENDSHIP") != "" {
		allow := getEnvBool("ALLOW_SELF_FRIENDSHIP", false)
		c.AllowSelfFriendship = &allow
	}

	if value, ok, err := lookupEnvInt("WRITE_RATE_LIMIT"); err != nil {
		return err
	} else if ok {
		c.WriteRateLimit = value
	}
	if value, ok, err := lookupEnvInt("MAX_PEOPLE"); err != nil {
		return err
	} else if ok {
		c.MaxPeople = &value
	}
	if value, ok, err := lookupEnvInt("MAX_FRIENDS_PER_PERSON"); err != nil {
		return err
	} else if ok {
		c.MaxFriendsPerPerson = &value
	}
	return nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.Environment {
	case "development", "production", "test":
	default:
		return fmt.Errorf("unknown ENVIRONMENT %q", c.Environment)
	}

	if c.ServerAddress == "" {
		return fmt.Errorf("SERVER_ADDRESS is required")
	}

	if c.WriteRateLimit < 0 {
		return fmt.Errorf("WRITE_RATE_LIMIT cannot be negative")
	}

	if c.IsProduction() && c.EnableCORS {
		for _, origin := range c.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf("wildcard CORS origin is not allowed in production")
			}
		}
	}

	return c.DomainConfig().Validate()
}

// DomainConfig resolves the network rules: environment preset, then explicit overrides
func (c *Config) DomainConfig() *domainconfig.DomainConfig {
	domain := domainconfig.LoadDomainConfig(c.Environment)
	if c.AllowSelfFriendship != nil {
		domain.AllowSelfFriendship = *c.AllowSelfFriendship
	}
	if c.MaxPeople != nil {
		domain.MaxPeople = *c.MaxPeople
	}
	if c.MaxFriendsPerPerson != nil {
		domain.MaxFriendsPerPerson = *c.MaxFriendsPerPerson
	}
	return domain
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// lookupEnvInt reads an integer environment variable; unset or empty reports ok=false
func lookupEnvInt(key string) (int, bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false, nil
	}
	intVal, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return intVal, true, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
