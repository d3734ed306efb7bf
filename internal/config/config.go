package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/ridness/clubbot/core/config"
	coredatabase "github.com/ridness/clubbot/core/database"
)

// ClubConfig holds the bot's domain settings.
type ClubConfig struct {
	// GroupID is the group channel included in preorder fan-out.
	GroupID int64 `yaml:"group_id" envconfig:"CLUB_GROUP_ID"`
	// PromoCode is shown on enrollment and on repeat club entry.
	PromoCode string `yaml:"promo_code" envconfig:"CLUB_PROMO_CODE"`
	// SiteURL is the external link attached to every catalog item.
	SiteURL string `yaml:"site_url" envconfig:"CLUB_SITE_URL"`
	// CatalogFile is the YAML catalog seeded into the database at startup.
	CatalogFile string `yaml:"catalog_file" envconfig:"CLUB_CATALOG_FILE"`
	// SessionTTLMinutes bounds idle conversation lifetime; 0 -> default.
	SessionTTLMinutes int `yaml:"session_ttl_minutes" envconfig:"CLUB_SESSION_TTL_MINUTES"`
}

// AppConfig aggregates core and domain configuration.
type AppConfig struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Club     ClubConfig          `yaml:"club"`
}

// CoreConfig exposes the embedded core configuration.
func (c *AppConfig) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Core
}

// Load reads the YAML config, applies .env and environment overrides, and
// validates the result.
func Load(path string) (*AppConfig, error) {
	// .env is optional; real env vars win over file values.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required fields and fills defaults.
func Normalize(cfg *AppConfig) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return err
	}

	if strings.TrimSpace(cfg.Club.PromoCode) == "" {
		cfg.Club.PromoCode = "RIDNESS10"
	}
	if strings.TrimSpace(cfg.Club.SiteURL) == "" {
		cfg.Club.SiteURL = "https://ridness.ru"
	}
	if cfg.Club.SessionTTLMinutes < 0 {
		return fmt.Errorf("config: club.session_ttl_minutes must be >= 0")
	}

	if strings.TrimSpace(cfg.Database.Host) == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if strings.TrimSpace(cfg.Database.Name) == "" {
		return fmt.Errorf("config: database.name is required")
	}
	return nil
}
