package utils

import (
	"net"
	"os"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const resolvConfPath = "/etc/resolv.conf"

// ResolveFQDN returns the fully qualified host name.
//
// A dotted hostname is returned as is. Otherwise each resolv.conf search
// domain is tried and the first name that answers an A or AAAA query wins.
// "localhost" is returned when nothing resolves.
func ResolveFQDN() string {
	host, err := os.Hostname()
	if err != nil || host == "" || host == "localhost" {
		return "localhost"
	}
	if strings.Contains(host, ".") {
		return strings.TrimSuffix(host, ".")
	}

	conf, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil || len(conf.Servers) == 0 {
		return host
	}
	client := &dns.Client{
		Net:     "udp",
		Timeout: 2 * time.Second,
	}
	server := net.JoinHostPort(conf.Servers[0], conf.Port)

	for _, domain := range conf.Search {
		candidate := dns.Fqdn(host + "." + strings.TrimSuffix(domain, "."))
		if hasAddress(client, server, candidate) {
			return strings.TrimSuffix(candidate, ".")
		}
	}
	return host
}

func hasAddress(client *dns.Client, server string, name string) bool {
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		m := new(dns.Msg)
		m.SetQuestion(name, qtype)
		m.RecursionDesired = true

		resp, _, err := client.Exchange(m, server)
		if err != nil || resp == nil {
			continue
		}
		if resp.Rcode == dns.RcodeSuccess && len(resp.Answer) > 0 {
			return true
		}
	}
	return false
}
