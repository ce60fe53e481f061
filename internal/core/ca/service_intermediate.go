package ca

import (
	"certmgr/internal/toolchain"
	"context"
	"fmt"
)

// == service: create intermediate CA ==
func (s *CAService) CreateInterCA(ctx context.Context, interParameter ServiceInterCAModel) (InterCAResult, error) {
	const op = "createInterCA"
	if err := validatePassphrase(op, "root CA", interParameter.RootPassphrase); err != nil {
		return InterCAResult{}, err
	}
	if err := validatePassphrase(op, "intermediate CA", interParameter.Passphrase); err != nil {
		return InterCAResult{}, err
	}

	var result InterCAResult
	err := s.lock.WithLock(func() (err error) {
		if err := s.requireInitialized(op, s.layout.InterConfigPath); err != nil {
			return err
		}
		rootCertPath := s.layout.RootCertPath()
		if !s.filesystemHandler.IsExist(rootCertPath) {
			return newError(op, KindNotFound, ErrRootCANotFound)
		}
		cfg, err := s.configStore.Load()
		if err != nil {
			return err
		}

		keyPath := s.layout.InterKeyPath()
		csrPath := s.layout.InterCSRPath()
		certPath := s.layout.InterCertPath()
		chainPath := s.layout.ChainCertPath()
		if s.filesystemHandler.IsExist(certPath) && !interParameter.Overwrite {
			return newError(op, KindConflict, fmt.Errorf("%w: intermediate CA %s", ErrAlreadyExists, certPath))
		}
		files, err := s.replaceFiles(keyPath, csrPath, certPath, chainPath)
		if err != nil {
			return err
		}
		defer func() { files.finish(err) }()

		// 1. private key
		if err := s.toolchainHandler.GenerateKey(ctx, toolchain.GenerateKeyModel{
			Out:        keyPath,
			Bits:       caKeyBits,
			Passphrase: interParameter.Passphrase,
		}); err != nil {
			return err
		}
		if err := s.filesystemHandler.Chmod(keyPath, 0o400); err != nil {
			return err
		}

		// 2. signing request
		if err := s.toolchainHandler.CreateRequest(ctx, toolchain.CreateRequestModel{
			Config:     s.layout.InterConfigPath,
			Key:        keyPath,
			Passphrase: interParameter.Passphrase,
			Out:        csrPath,
		}); err != nil {
			return err
		}

		// 3. sign with the root CA
		if err := s.toolchainHandler.SignRequest(ctx, toolchain.SignRequestModel{
			Config:     s.layout.RootConfigPath,
			Extensions: "v3_intermediate_ca",
			Days:       cfg.InterCADays,
			In:         csrPath,
			Out:        certPath,
			Passphrase: interParameter.RootPassphrase,
		}); err != nil {
			return err
		}
		if err := s.filesystemHandler.Chmod(certPath, 0o444); err != nil {
			return err
		}

		// 4. chain = intermediate + root
		if err := s.writeChain(chainPath, certPath, rootCertPath); err != nil {
			return fmt.Errorf("write chain failed: %w", err)
		}

		// 5. certificate text
		text, err := s.toolchainHandler.CertificateText(ctx, certPath)
		if err != nil {
			return err
		}

		result = InterCAResult{
			Certificate:  certPath,
			Chain:        chainPath,
			ValidityDays: cfg.InterCADays,
			Text:         text,
		}
		return nil
	})
	if err != nil {
		return InterCAResult{}, err
	}

	s.logResult("intermediate CA created: %s", result.Certificate)
	s.logResult("certificate chain: %s", result.Chain)
	return result, nil
}

func (s *CAService) writeChain(chainPath string, certPaths ...string) error {
	var chain []byte
	for _, p := range certPaths {
		b, err := s.filesystemHandler.ReadFile(p)
		if err != nil {
			return err
		}
		chain = append(chain, b...)
		if len(b) > 0 && b[len(b)-1] != '\n' {
			chain = append(chain, '\n')
		}
	}
	return s.filesystemHandler.WriteFile(chainPath, chain, 0o444)
}
