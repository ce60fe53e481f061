package utils

// file names shared by the CA layout
const (
	ConfigFileName           = "certmgr_config.json"
	RootTemplateName         = "rootca.cnf.template"
	IntermediateTemplateName = "intermediate.cnf.template"
	CSRTemplateName          = "csr.cnf.template"
	RootConfigName           = "rootca.cnf"
	IntermediateConfigName   = "intermediate.cnf"
	IndexFileName            = "index.txt"
	SerialFileName           = "serial"
	CRLNumberFileName        = "crlnumber"
	RootKeyName              = "ca.key.pem"
	RootCertName             = "ca.cert.pem"
	IntermediateKeyName      = "intermediate.key.pem"
	IntermediateCSRName      = "intermediate.csr.pem"
	IntermediateCertName     = "intermediate.cert.pem"
	ChainCertName            = "ca-chain.cert.pem"
	CRLFileName              = "intermediate.crl.pem"
	RequestStoreName         = "requests.json"
	AuditLogName             = "audit.log"
	EnvFileName              = ".env"
	InitialSerial            = "1000\n"
	InitialCRLNumber         = "1000\n"
	CSRTimestampLayout       = "20060102_150405"
	DefaultOpenSSLBinary     = "openssl"
	DefaultAPIAddr           = "0.0.0.0:8000"
	ServiceName              = "X509 Certificate Management API"
	ServiceVersion           = "1.0.0"
)
