package ca

import (
	"certmgr/internal/toolchain"
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// == service: sign certificate ==
func (s *CAService) SignCert(ctx context.Context, signParameter ServiceSignModel) (SignResult, error) {
	const op = "signCert"

	if strings.TrimSpace(signParameter.CSRFile) == "" {
		return SignResult{}, invalidInput(op, "csr file is required")
	}
	certType, err := certTypeOrDefault(op, signParameter.CertType)
	if err != nil {
		return SignResult{}, err
	}
	if err := validatePassphrase(op, "intermediate CA", signParameter.Passphrase); err != nil {
		return SignResult{}, err
	}
	csrPath, err := filepath.Abs(signParameter.CSRFile)
	if err != nil {
		return SignResult{}, err
	}

	var result SignResult
	err = s.lock.WithLock(func() error {
		if err := s.requireInitialized(op, s.layout.InterConfigPath); err != nil {
			return err
		}
		if !s.InterCAExists() {
			return newError(op, KindNotFound, ErrIntermediateCANotFound)
		}
		if !s.filesystemHandler.IsExist(csrPath) {
			return notFound(op, "CSR %s", signParameter.CSRFile)
		}
		cfg, err := s.configStore.Load()
		if err != nil {
			return err
		}

		certPath := filepath.Join(s.layout.IssuedDir, certName(csrPath)+".cert.pem")
		if s.filesystemHandler.IsExist(certPath) {
			return newError(op, KindConflict, fmt.Errorf("%w: %s", ErrAlreadyExists, certPath))
		}

		// 1. sign with the intermediate CA
		if err := s.toolchainHandler.SignRequest(ctx, toolchain.SignRequestModel{
			Config:     s.layout.InterConfigPath,
			Extensions: extensionFor(certType),
			Days:       cfg.CertDays,
			In:         csrPath,
			Out:        certPath,
			Passphrase: signParameter.Passphrase,
		}); err != nil {
			return err
		}
		if err := s.filesystemHandler.Chmod(certPath, 0o444); err != nil {
			return err
		}

		// 2. serial and text
		serial, err := s.toolchainHandler.CertificateSerial(ctx, certPath)
		if err != nil {
			return err
		}
		text, err := s.toolchainHandler.CertificateText(ctx, certPath)
		if err != nil {
			return err
		}

		// 3. registry
		if err := s.ismHandler.MarkIssued(csrPath, certPath, serial); err != nil {
			s.logResult("registry update failed: %v", err)
		}

		result = SignResult{
			Certificate:  certPath,
			Serial:       serial,
			ValidityDays: cfg.CertDays,
			Text:         text,
		}
		return nil
	})
	if err != nil {
		return SignResult{}, err
	}

	s.logResult("certificate issued: %s (serial=%s)", result.Certificate, result.Serial)
	return result, nil
}

// certName derives the certificate base name from a CSR path:
// web_20240115_120000.csr.pem -> web_20240115_120000
func certName(csrPath string) string {
	name := filepath.Base(csrPath)
	name = strings.TrimSuffix(name, ".pem")
	name = strings.TrimSuffix(name, ".csr")
	return name
}

func extensionFor(certType string) string {
	if certType == CertTypeServer {
		return "server_cert"
	}
	return "usr_cert"
}
