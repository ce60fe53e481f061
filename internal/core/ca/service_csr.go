package ca

import (
	"certmgr/internal/store/ism"
	"certmgr/internal/template"
	"certmgr/internal/toolchain"
	"certmgr/internal/utils"
	"context"
	"fmt"
	"net/netip"
	"path/filepath"
	"strings"
	"unicode"
)

// == service: create certificate request ==
func (s *CAService) CreateCertReq(ctx context.Context, csrParameter ServiceCertReqModel) (CertReqResult, error) {
	const op = "createCertReq"

	commonName := strings.TrimSpace(csrParameter.CommonName)
	if commonName == "" {
		return CertReqResult{}, invalidInput(op, "common name is required")
	}
	if hasControl(commonName) {
		return CertReqResult{}, invalidInput(op, "common name must not contain control characters")
	}
	certType, err := certTypeOrDefault(op, csrParameter.CertType)
	if err != nil {
		return CertReqResult{}, err
	}

	// SAN defaults: DNS = common name, IP = loopback
	dnsNames := compact(csrParameter.SANDNS)
	if len(dnsNames) == 0 {
		dnsNames = []string{commonName}
	}
	for _, name := range dnsNames {
		if hasControl(name) {
			return CertReqResult{}, invalidInput(op, "DNS SAN %q must not contain control characters", name)
		}
	}
	ipAddresses := compact(csrParameter.SANIP)
	if len(ipAddresses) == 0 {
		ipAddresses = []string{defaultSANIP}
	}
	for _, ip := range ipAddresses {
		if _, err := netip.ParseAddr(ip); err != nil {
			return CertReqResult{}, invalidInput(op, "invalid IP SAN %q", ip)
		}
	}

	var result CertReqResult
	err = s.lock.WithLock(func() error {
		csrTemplate := s.layout.TemplatePath(utils.CSRTemplateName)
		if err := s.requireInitialized(op, csrTemplate); err != nil {
			return err
		}
		cfg, err := s.configStore.Load()
		if err != nil {
			return err
		}

		// 1. file names
		name := safeName(commonName) + "_" + s.now().Format(utils.CSRTimestampLayout)
		keyPath := filepath.Join(s.layout.PrivateKeysDir, name+".key.pem")
		csrPath := filepath.Join(s.layout.CSRDir, name+".csr.pem")
		cnfPath := filepath.Join(s.layout.ConfDir, "csr_"+name+".cnf")
		if s.filesystemHandler.IsExist(csrPath) || s.filesystemHandler.IsExist(keyPath) {
			return newError(op, KindConflict, fmt.Errorf("%w: %s", ErrAlreadyExists, csrPath))
		}

		// 2. render request config
		if err := s.renderer.Render(csrTemplate, cnfPath, map[string]string{
			"CERT_CN":   commonName,
			"COUNTRY":   cfg.Country,
			"STATE":     cfg.State,
			"LOCALITY":  cfg.Locality,
			"ORG":       cfg.Organization,
			"SAN_DNS":   dnsNames[0],
			"SAN_IP":    ipAddresses[0],
			"ALT_NAMES": template.AltNames(dnsNames, ipAddresses),
		}); err != nil {
			return err
		}
		s.logResult("generated: %s", cnfPath)

		// 3. private key (unencrypted)
		if err := s.toolchainHandler.GenerateKey(ctx, toolchain.GenerateKeyModel{
			Out:  keyPath,
			Bits: leafKeyBits,
		}); err != nil {
			return err
		}
		if err := s.filesystemHandler.Chmod(keyPath, 0o400); err != nil {
			return err
		}

		// 4. signing request
		if err := s.toolchainHandler.CreateRequest(ctx, toolchain.CreateRequestModel{
			Config: cnfPath,
			Key:    keyPath,
			Out:    csrPath,
		}); err != nil {
			return err
		}

		// 5. register
		requestId := s.newId()
		if err := s.ismHandler.StoreRequest(requestId, ism.RequestInfo{
			CommonName:  commonName,
			Type:        certType,
			DNSNames:    dnsNames,
			IPAddresses: ipAddresses,
			CSRPath:     csrPath,
			KeyPath:     keyPath,
			ConfigPath:  cnfPath,
			RequestedAt: s.now(),
		}); err != nil {
			return fmt.Errorf("store request failed: %w", err)
		}

		result = CertReqResult{
			CSRFile:    csrPath,
			PrivateKey: keyPath,
			ConfigFile: cnfPath,
			CommonName: commonName,
			Type:       certType,
			RequestId:  requestId,
		}
		return nil
	})
	if err != nil {
		return CertReqResult{}, err
	}

	s.logResult("CSR created: %s", result.CSRFile)
	s.logResult("private key: %s", result.PrivateKey)
	return result, nil
}

// safeName turns a common name into a file name component.
func safeName(commonName string) string {
	return strings.NewReplacer("*", "wildcard", "/", "_").Replace(commonName)
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// hasControl reports whether v would break a line of the rendered
// openssl config.
func hasControl(v string) bool {
	return strings.ContainsFunc(v, unicode.IsControl)
}
