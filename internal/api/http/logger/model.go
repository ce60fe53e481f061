package logger

type Logger interface {
	Write(event Event)
}

type Event struct {
	TS            string `json:"ts"`
	EventId       string `json:"event_id"`
	CorrelationId string `json:"correlation_id,omitempty"`
	Severity      string `json:"severity"`

	Actor Actor `json:"actor"`

	Action string `json:"action,omitempty"`
	Target Target `json:"target,omitempty"`

	Request Request `json:"request"`
	Result  Result  `json:"result"`

	Runtime Runtime `json:"runtime"`

	Extra map[string]any `json:"extra,omitempty"`
}

type Actor struct {
	CertFingerprint string `json:"cert_fingerprint,omitempty"`
	PeerIp          string `json:"peer_ip,omitempty"`
	UserAgent       string `json:"user_agent,omitempty"`
}

type Target struct {
	CommonName string   `json:"common_name,omitempty"`
	CertType   string   `json:"cert_type,omitempty"`
	File       string   `json:"file,omitempty"`
	Serial     string   `json:"serial,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	SANs       []string `json:"sans,omitempty"`
}

type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Host   string `json:"host,omitempty"`
}

type Result struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Reason    string `json:"reason,omitempty"`
	Bytes     int    `json:"bytes,omitempty"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
}

type Runtime struct {
	Component string `json:"component,omitempty"`
	Node      string `json:"node,omitempty"`
}

type ctxKey int

var Severity = map[int]string{
	0: "information",
	1: "low",
	2: "medium",
	3: "high",
	4: "critical",
}

const (
	SEV_INFO     = 0
	SEV_LOW      = 1
	SEV_MEDIUM   = 2
	SEV_HIGH     = 3
	SEV_CRITICAL = 4
)

type Rule struct {
	Method   string
	Pattern  string
	Action   string
	Severity int
}

var rules = []Rule{
	// status
	{"GET", "/", "service.health", SEV_INFO},

	// setup
	{"POST", "/api/v1/init", "pki.init", SEV_MEDIUM},
	{"GET", "/api/v1/config", "pki.config.get", SEV_INFO},

	// certificate authority
	{"POST", "/api/v1/ca/root", "pki.ca.root", SEV_HIGH},
	{"POST", "/api/v1/ca/intermediate", "pki.ca.intermediate", SEV_HIGH},

	// certificates
	{"POST", "/api/v1/csr", "pki.csr.create", SEV_MEDIUM},
	{"POST", "/api/v1/certificates/sign", "pki.cert.sign", SEV_HIGH},
	{"POST", "/api/v1/certificates/revoke", "pki.cert.revoke", SEV_HIGH},
	{"GET", "/api/v1/certificates/list", "pki.cert.list", SEV_INFO},
	{"GET", "/api/v1/certificates/download/{filename}", "pki.cert.download", SEV_LOW},
	{"GET", "/api/v1/requests", "pki.request.list", SEV_INFO},

	// revocation
	{"POST", "/api/v1/crl/update", "pki.crl.update", SEV_MEDIUM},
}

// actions set explicitly by handlers
var actionSeverity = map[string]int{
	"pki.ca.root.overwrite":         SEV_CRITICAL,
	"pki.ca.intermediate.overwrite": SEV_CRITICAL,
	"pki.cert.revoke.keyCompromise": SEV_CRITICAL,
	"pki.cert.revoke.CACompromise":  SEV_CRITICAL,
}
