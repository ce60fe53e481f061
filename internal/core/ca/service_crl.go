package ca

import (
	"certmgr/internal/toolchain"
	"context"
)

// == service: update CRL ==
func (s *CAService) UpdateCRL(ctx context.Context, crlParameter ServiceCRLModel) (CRLResult, error) {
	const op = "updateCRL"
	if err := validatePassphrase(op, "intermediate CA", crlParameter.Passphrase); err != nil {
		return CRLResult{}, err
	}

	var result CRLResult
	err := s.lock.WithLock(func() error {
		if err := s.requireInitialized(op, s.layout.InterConfigPath); err != nil {
			return err
		}
		if !s.InterCAExists() {
			return newError(op, KindNotFound, ErrIntermediateCANotFound)
		}
		crl, err := s.generateCRL(ctx, crlParameter.Passphrase)
		if err != nil {
			return err
		}
		result = crl
		return nil
	})
	return result, err
}

// generateCRL expects the caller to hold the CA lock.
func (s *CAService) generateCRL(ctx context.Context, passphrase string) (CRLResult, error) {
	crlPath := s.layout.CRLPath()
	if err := s.toolchainHandler.GenerateCRL(ctx, toolchain.GenerateCRLModel{
		Config:     s.layout.InterConfigPath,
		Out:        crlPath,
		Passphrase: passphrase,
	}); err != nil {
		return CRLResult{}, err
	}
	s.logResult("CRL updated: %s", crlPath)

	text, err := s.toolchainHandler.CRLText(ctx, crlPath)
	if err != nil {
		return CRLResult{}, err
	}
	return CRLResult{CRLFile: crlPath, Text: text}, nil
}
