package ca

import (
	"certmgr/internal/toolchain"
	"context"
	"fmt"
)

// == service: create root CA ==
func (s *CAService) CreateRootCA(ctx context.Context, rootParameter ServiceRootCAModel) (RootCAResult, error) {
	const op = "createRootCA"
	if err := validatePassphrase(op, "root CA", rootParameter.Passphrase); err != nil {
		return RootCAResult{}, err
	}

	var result RootCAResult
	err := s.lock.WithLock(func() (err error) {
		if err := s.requireInitialized(op, s.layout.RootConfigPath); err != nil {
			return err
		}
		cfg, err := s.configStore.Load()
		if err != nil {
			return err
		}

		keyPath := s.layout.RootKeyPath()
		certPath := s.layout.RootCertPath()
		if s.filesystemHandler.IsExist(certPath) && !rootParameter.Overwrite {
			return newError(op, KindConflict, fmt.Errorf("%w: root CA %s", ErrAlreadyExists, certPath))
		}
		files, err := s.replaceFiles(keyPath, certPath)
		if err != nil {
			return err
		}
		defer func() { files.finish(err) }()

		// 1. private key
		if err := s.toolchainHandler.GenerateKey(ctx, toolchain.GenerateKeyModel{
			Out:        keyPath,
			Bits:       caKeyBits,
			Passphrase: rootParameter.Passphrase,
		}); err != nil {
			return err
		}
		if err := s.filesystemHandler.Chmod(keyPath, 0o400); err != nil {
			return err
		}

		// 2. self-signed certificate
		if err := s.toolchainHandler.SelfSign(ctx, toolchain.SelfSignModel{
			Config:     s.layout.RootConfigPath,
			Key:        keyPath,
			Passphrase: rootParameter.Passphrase,
			Days:       cfg.RootCADays,
			Extensions: "v3_ca",
			Out:        certPath,
		}); err != nil {
			return err
		}
		if err := s.filesystemHandler.Chmod(certPath, 0o444); err != nil {
			return err
		}

		// 3. certificate text
		text, err := s.toolchainHandler.CertificateText(ctx, certPath)
		if err != nil {
			return err
		}

		result = RootCAResult{
			Certificate:  certPath,
			PrivateKey:   keyPath,
			ValidityDays: cfg.RootCADays,
			Text:         text,
		}
		return nil
	})
	if err != nil {
		return RootCAResult{}, err
	}

	s.logResult("root CA created: %s", result.Certificate)
	return result, nil
}
