package config

import "fmt"

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Network constraints, zero means unlimited
	MaxPeople           int
	MaxFriendsPerPerson int

	// Validation settings
	AllowSelfFriendship bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MaxPeople:           0,
		MaxFriendsPerPerson: 0,
		AllowSelfFriendship: false,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// Bounded growth for a long-running process
	config.MaxPeople = 100000
	config.MaxFriendsPerPerson = 5000

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// Small limits surface runaway scripts early
	config.MaxPeople = 10000
	config.MaxFriendsPerPerson = 1000

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if c.MaxPeople < 0 {
		return fmt.Errorf("max people cannot be negative: %d", c.MaxPeople)
	}
	if c.MaxFriendsPerPerson < 0 {
		return fmt.Errorf("max friends per person cannot be negative: %d", c.MaxFriendsPerPerson)
	}
	return nil
}
