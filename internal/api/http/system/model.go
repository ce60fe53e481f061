package system

import "certmgr/internal/config"

// == health ==
type HealthResponse struct {
	Service     string `json:"service" example:"X509 Certificate Management API"`
	Version     string `json:"version" example:"1.0.0"`
	Status      string `json:"status" example:"operational"`
	Environment string `json:"environment" example:"development"`
	RootCA      bool   `json:"root_ca"`
	InterCA     bool   `json:"intermediate_ca"`
}

// == init ==
type InitRequest struct {
	Country      string `json:"country,omitempty" example:"US"`
	State        string `json:"state,omitempty" example:"California"`
	Locality     string `json:"locality,omitempty" example:"San Francisco"`
	Organization string `json:"organization,omitempty" example:"My Company CA"`
	RootCACN     string `json:"root_ca_cn,omitempty" example:"Root CA example.local"`
	InterCACN    string `json:"inter_ca_cn,omitempty" example:"Intermediate CA example.local"`
}

type InitResponse struct {
	Config config.Config `json:"config"`
}
