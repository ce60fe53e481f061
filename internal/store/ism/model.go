package ism

import "time"

const (
	StateRequested = "requested"
	StateIssued    = "issued"
	StateRevoked   = "revoked"
)

type RequestInfo struct {
	RequestId   string    `json:"requestId" yaml:"requestId"`
	CommonName  string    `json:"commonName" yaml:"commonName"`
	Type        string    `json:"type" yaml:"type"`
	DNSNames    []string  `json:"dnsNames,omitempty" yaml:"dnsNames,omitempty"`
	IPAddresses []string  `json:"ipAddresses,omitempty" yaml:"ipAddresses,omitempty"`
	CSRPath     string    `json:"csrPath" yaml:"csrPath"`
	KeyPath     string    `json:"keyPath" yaml:"keyPath"`
	ConfigPath  string    `json:"configPath" yaml:"configPath"`
	CertPath    string    `json:"certPath,omitempty" yaml:"certPath,omitempty"`
	Serial      string    `json:"serial,omitempty" yaml:"serial,omitempty"`
	State       string    `json:"state" yaml:"state"`
	RequestedAt time.Time `json:"requestedAt" yaml:"requestedAt"`
	IssuedAt    time.Time `json:"issuedAt,omitzero" yaml:"issuedAt,omitempty"`
	RevokedAt   time.Time `json:"revokedAt,omitzero" yaml:"revokedAt,omitempty"`
}

type IssuanceState struct {
	Version  string                 `json:"version"`
	Requests map[string]RequestInfo `json:"requests"`
}
