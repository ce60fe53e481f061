package cert

import (
	"net"
	"time"
)

// CertConfig describes the API server's own TLS identity.
type CertConfig struct {
	CommonName  string
	DNSNames    []string
	IPAddresses []net.IP
	ValidFor    time.Duration
}

func (c CertConfig) days() int {
	d := int(c.ValidFor / (24 * time.Hour))
	if d < 1 {
		return 1
	}
	return d
}
