package config

import "time"

// Config is the persisted CA configuration (certmgr_config.json).
type Config struct {
	Country      string `json:"country" yaml:"country"`
	State        string `json:"state" yaml:"state"`
	Locality     string `json:"locality" yaml:"locality"`
	Organization string `json:"organization" yaml:"organization"`
	RootCACN     string `json:"root_ca_cn" yaml:"root_ca_cn"`
	InterCACN    string `json:"inter_ca_cn" yaml:"inter_ca_cn"`
	RootCADays   int    `json:"root_ca_days" yaml:"root_ca_days"`
	InterCADays  int    `json:"inter_ca_days" yaml:"inter_ca_days"`
	CertDays     int    `json:"cert_days" yaml:"cert_days"`
	FQDN         string `json:"fqdn" yaml:"fqdn"`
}

// Settings are process level knobs read from the environment.
type Settings struct {
	Home            string        `env:"CERTMGR_HOME"`
	OpenSSL         string        `env:"CERTMGR_OPENSSL" envDefault:"openssl"`
	APIAddr         string        `env:"CERTMGR_API_ADDR" envDefault:"0.0.0.0:8000"`
	Environment     string        `env:"ENV" envDefault:"development"`
	RootPassphrase  string        `env:"CERTMGR_ROOT_PASSPHRASE"`
	InterPassphrase string        `env:"CERTMGR_INTER_PASSPHRASE"`
	TLSCert         string        `env:"CERTMGR_TLS_CERT"`
	TLSKey          string        `env:"CERTMGR_TLS_KEY"`
	CRLRefresh      time.Duration `env:"CERTMGR_CRL_REFRESH" envDefault:"0s"`
	AuditLog        string        `env:"CERTMGR_AUDIT_LOG"`
}

func (s Settings) IsProduction() bool {
	return s.Environment == "production"
}

func (s Settings) TLSEnabled() bool {
	return s.TLSCert != "" && s.TLSKey != ""
}
