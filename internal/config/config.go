// Package config loads and validates the ward-rota configuration file:
// the month settings, the generation knobs, and the employee roster.
// Validation happens here, before anything reaches the engine — the
// engine assumes sanitized input.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is searched for in the working directory first, then
// the user's home directory.
const ConfigFileName = "ward_rota_config.yaml"

// EmployeeEntry is one roster member as written in the config file.
// Engine ids are minted at load time, not persisted.
type EmployeeEntry struct {
	Name          string `yaml:"name" validate:"required"`
	Preference    string `yaml:"preference,omitempty" validate:"omitempty,oneof=day night neither"`
	DesiredShifts int    `yaml:"desiredShifts" validate:"min=0"`
	Reserve       bool   `yaml:"reserve,omitempty"`
}

// SeatRule overrides seat counts on the days matched by its recurrence
// rule, e.g. FREQ=WEEKLY;BYDAY=SA,SU for weekends. A nil count leaves
// the default in place.
type SeatRule struct {
	RRule      string `yaml:"rrule" validate:"required"`
	DaySeats   *int   `yaml:"daySeats,omitempty" validate:"omitempty,min=0"`
	NightSeats *int   `yaml:"nightSeats,omitempty" validate:"omitempty,min=0"`
}

// Config is the application configuration.
type Config struct {
	Year  int `yaml:"year" validate:"required,min=1970,max=2199"`
	Month int `yaml:"month" validate:"required,min=1,max=12"`

	DaySeats   int `yaml:"daySeats" validate:"min=0"`
	NightSeats int `yaml:"nightSeats" validate:"min=0"`

	NoMorningAfterNight bool  `yaml:"noMorningAfterNight"`
	WeeklyCap           int   `yaml:"weeklyCap,omitempty" validate:"omitempty,min=1"`
	MaxStreak           int   `yaml:"maxStreak,omitempty" validate:"omitempty,min=1,max=7"`
	WeekSpread          *bool `yaml:"weekSpread,omitempty"`
	AutoReserves        bool  `yaml:"autoReserves"`
	HardFill            bool  `yaml:"hardFill"`

	// Seed pins the run's random sequence for reproducible rosters.
	// When absent a fresh seed is drawn per run.
	Seed *uint32 `yaml:"seed,omitempty"`

	Employees []EmployeeEntry `yaml:"employees" validate:"required,min=1,dive"`
	SeatRules []SeatRule      `yaml:"seatOverrides,omitempty" validate:"dive"`
}

// WeekSpreadEnabled resolves the tri-state yaml field; spreading is on
// unless explicitly disabled.
func (c *Config) WeekSpreadEnabled() bool {
	return c.WeekSpread == nil || *c.WeekSpread
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration, searching the working
// directory and then the home directory for ward_rota_config.yaml.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes and validates raw yaml configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate runs struct validation plus the one check tags cannot
// express: rrule syntax in the seat override rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.SeatRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in seatOverrides[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in the current directory
// and the home directory.
func findConfigFile() (string, error) {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, ConfigFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", ConfigFileName)
}
