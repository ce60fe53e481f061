package config

import (
	"certmgr/internal/utils"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultCountry      = "US"
	defaultState        = "California"
	defaultLocality     = "San Francisco"
	defaultOrganization = "Local Development CA"

	defaultRootCADays  = 3650 // 10 years
	defaultInterCADays = 1825 // 5 years
	defaultCertDays    = 365
)

// Default returns the configuration used when no config file exists.
func Default(fqdn string) Config {
	if fqdn == "" {
		fqdn = "localhost"
	}
	return Config{
		Country:      defaultCountry,
		State:        defaultState,
		Locality:     defaultLocality,
		Organization: defaultOrganization,
		RootCACN:     "Root CA " + fqdn,
		InterCACN:    "Intermediate CA " + fqdn,
		RootCADays:   defaultRootCADays,
		InterCADays:  defaultInterCADays,
		CertDays:     defaultCertDays,
		FQDN:         fqdn,
	}
}

// Merge overrides c with every non-empty field of o.
func (c Config) Merge(o Config) Config {
	if o.Country != "" {
		c.Country = o.Country
	}
	if o.State != "" {
		c.State = o.State
	}
	if o.Locality != "" {
		c.Locality = o.Locality
	}
	if o.Organization != "" {
		c.Organization = o.Organization
	}
	if o.RootCACN != "" {
		c.RootCACN = o.RootCACN
	}
	if o.InterCACN != "" {
		c.InterCACN = o.InterCACN
	}
	if o.RootCADays > 0 {
		c.RootCADays = o.RootCADays
	}
	if o.InterCADays > 0 {
		c.InterCADays = o.InterCADays
	}
	if o.CertDays > 0 {
		c.CertDays = o.CertDays
	}
	if o.FQDN != "" {
		c.FQDN = o.FQDN
	}
	return c
}

func (c Config) Validate() error {
	if len(c.Country) != 2 {
		return fmt.Errorf("country must be a two-letter code, got %q", c.Country)
	}
	if c.RootCACN == "" || c.InterCACN == "" {
		return fmt.Errorf("ca common names must not be empty")
	}
	if c.RootCADays <= 0 || c.InterCADays <= 0 || c.CertDays <= 0 {
		return fmt.Errorf("validity days must be positive")
	}
	return nil
}

// LoadSettings reads Settings from the environment. A .env file in the
// home directory (CERTMGR_HOME or the working directory) is applied first
// without overriding variables already set.
func LoadSettings() (Settings, error) {
	home := os.Getenv("CERTMGR_HOME")
	if home == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Settings{}, err
		}
		home = wd
	}
	envFile := filepath.Join(home, utils.EnvFileName)
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Settings{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Home == "" {
		s.Home = home
	}
	abs, err := filepath.Abs(s.Home)
	if err != nil {
		return Settings{}, err
	}
	s.Home = abs
	return s, nil
}
