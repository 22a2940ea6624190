package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Log  LogConfig
	Keys map[string][]string
}

// UIConfig holds presentation settings for the shell chrome.
type UIConfig struct {
	AltScreen         bool   `mapstructure:"alt_screen"`
	Clinician         string `mapstructure:"clinician"`
	ClinicianInitials string `mapstructure:"clinician_initials"`
	SidebarWidth      int    `mapstructure:"sidebar_width"`
}

// LogConfig holds logging settings. The terminal belongs to the UI, so logs
// go to a file unless Console is set.
type LogConfig struct {
	Path    string
	Level   string
	Console bool
}

// Load reads configuration from file and env. Env var overrides use prefix CLINICFLOW_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.clinician", "Dr. Smith")
	v.SetDefault("ui.clinician_initials", "DR")
	v.SetDefault("ui.sidebar_width", 22)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "clinicflow", "clinicflow.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CLINICFLOW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "clinicflow"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLINICFLOW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicitly named file must exist and parse
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.ClinicianInitials = strings.TrimSpace(c.UI.ClinicianInitials)
	if c.UI.SidebarWidth < 12 {
		c.UI.SidebarWidth = 12
	}
	return c, nil
}
