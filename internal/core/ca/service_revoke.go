package ca

import (
	"certmgr/internal/toolchain"
	"context"
	"path/filepath"
	"strings"
)

// == service: revoke certificate ==
func (s *CAService) RevokeCert(ctx context.Context, revokeParameter ServiceRevokeModel) (RevokeResult, error) {
	const op = "revokeCert"

	if strings.TrimSpace(revokeParameter.CertFile) == "" {
		return RevokeResult{}, invalidInput(op, "certificate file is required")
	}
	reason := strings.TrimSpace(revokeParameter.Reason)
	if reason != "" && !IsValidReason(reason) {
		return RevokeResult{}, invalidInput(op, "unknown revocation reason %q", reason)
	}
	if err := validatePassphrase(op, "intermediate CA", revokeParameter.Passphrase); err != nil {
		return RevokeResult{}, err
	}
	certPath, err := filepath.Abs(revokeParameter.CertFile)
	if err != nil {
		return RevokeResult{}, err
	}

	var result RevokeResult
	err = s.lock.WithLock(func() error {
		if err := s.requireInitialized(op, s.layout.InterConfigPath); err != nil {
			return err
		}
		if !s.InterCAExists() {
			return newError(op, KindNotFound, ErrIntermediateCANotFound)
		}
		if !s.filesystemHandler.IsExist(certPath) {
			return notFound(op, "certificate %s", revokeParameter.CertFile)
		}

		// 1. revoke
		if err := s.toolchainHandler.Revoke(ctx, toolchain.RevokeModel{
			Config:     s.layout.InterConfigPath,
			Cert:       certPath,
			Reason:     reason,
			Passphrase: revokeParameter.Passphrase,
		}); err != nil {
			return err
		}
		s.logResult("certificate revoked: %s", certPath)

		if err := s.ismHandler.MarkRevokedByCert(certPath); err != nil {
			s.logResult("registry update failed: %v", err)
		}

		// 2. regenerate CRL
		crl, err := s.generateCRL(ctx, revokeParameter.Passphrase)
		if err != nil {
			return err
		}

		result = RevokeResult{
			Certificate: certPath,
			CRLFile:     crl.CRLFile,
		}
		return nil
	})
	if err != nil {
		return RevokeResult{}, err
	}
	return result, nil
}
