package ca

import "slices"

const (
	CertTypeServer = "server"
	CertTypeClient = "client"

	defaultSANIP = "127.0.0.1"
	caKeyBits    = 4096
	leafKeyBits  = 2048
)

// revocation reasons accepted by `openssl ca -crl_reason`
var RevocationReasons = []string{
	"unspecified",
	"keyCompromise",
	"CACompromise",
	"affiliationChanged",
	"superseded",
	"cessationOfOperation",
	"certificateHold",
	"removeFromCRL",
}

func IsValidCertType(certType string) bool {
	return certType == CertTypeServer || certType == CertTypeClient
}

func IsValidReason(reason string) bool {
	return slices.Contains(RevocationReasons, reason)
}

type ServiceInitModel struct {
	Country      string
	State        string
	Locality     string
	Organization string
	RootCACN     string
	InterCACN    string
}

type ServiceRootCAModel struct {
	Passphrase string
	Overwrite  bool
}

type ServiceInterCAModel struct {
	RootPassphrase string
	Passphrase     string
	Overwrite      bool
}

type ServiceCertReqModel struct {
	CommonName string
	CertType   string
	SANDNS     []string
	SANIP      []string
}

type ServiceSignModel struct {
	CSRFile    string
	CertType   string
	Passphrase string
}

type ServiceRevokeModel struct {
	CertFile   string
	Passphrase string
	Reason     string
}

type ServiceCRLModel struct {
	Passphrase string
}

type RootCAResult struct {
	Certificate  string `json:"certificate" yaml:"certificate"`
	PrivateKey   string `json:"private_key" yaml:"private_key"`
	ValidityDays int    `json:"validity_days" yaml:"validity_days"`
	Text         string `json:"text,omitempty" yaml:"text,omitempty"`
}

type InterCAResult struct {
	Certificate  string `json:"certificate" yaml:"certificate"`
	Chain        string `json:"chain" yaml:"chain"`
	ValidityDays int    `json:"validity_days" yaml:"validity_days"`
	Text         string `json:"text,omitempty" yaml:"text,omitempty"`
}

type CertReqResult struct {
	CSRFile    string `json:"csr_file" yaml:"csr_file"`
	PrivateKey string `json:"private_key" yaml:"private_key"`
	ConfigFile string `json:"config_file" yaml:"config_file"`
	CommonName string `json:"common_name" yaml:"common_name"`
	Type       string `json:"type" yaml:"type"`
	RequestId  string `json:"request_id" yaml:"request_id"`
}

type SignResult struct {
	Certificate  string `json:"certificate" yaml:"certificate"`
	Serial       string `json:"serial" yaml:"serial"`
	ValidityDays int    `json:"validity_days" yaml:"validity_days"`
	Text         string `json:"text,omitempty" yaml:"text,omitempty"`
}

type RevokeResult struct {
	Certificate string `json:"certificate" yaml:"certificate"`
	CRLFile     string `json:"crl_file" yaml:"crl_file"`
}

type CRLResult struct {
	CRLFile string `json:"crl_file" yaml:"crl_file"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Certificate is one row of the intermediate CA index.
type Certificate struct {
	Status           string  `json:"status" yaml:"status"`
	Serial           string  `json:"serial" yaml:"serial"`
	Subject          string  `json:"subject" yaml:"subject"`
	Expiration       string  `json:"expiration" yaml:"expiration"`
	RevocationDate   *string `json:"revocation_date" yaml:"revocation_date"`
	RevocationReason string  `json:"revocation_reason,omitempty" yaml:"revocation_reason,omitempty"`
	Filename         string  `json:"filename" yaml:"filename"`
}
