package cert

import (
	"certmgr/internal/toolchain"
	"certmgr/internal/utils"
	"context"
	"fmt"
	"log"
	"path/filepath"
)

func NewCertManager(toolchainHandler toolchain.ToolchainHandler) *CertManager {
	return &CertManager{
		toolchainHandler:  toolchainHandler,
		filesystemHandler: utils.NewFilesystemExecutor(),
	}
}

type CertManager struct {
	toolchainHandler  toolchain.ToolchainHandler
	filesystemHandler utils.FilesystemHandler
}

// EnsureSelfSignedCert creates a self-signed server pair when either file
// is missing. An existing pair is left untouched.
func (m *CertManager) EnsureSelfSignedCert(ctx context.Context, certPath string, keyPath string, cfg CertConfig) error {
	if m.filesystemHandler.IsExist(certPath) && m.filesystemHandler.IsExist(keyPath) {
		return nil
	}
	if cfg.CommonName == "" {
		return fmt.Errorf("ensure tls cert: common name is required")
	}

	// 1. prepare directories
	for _, dir := range []string{filepath.Dir(certPath), filepath.Dir(keyPath)} {
		if err := m.filesystemHandler.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("ensure tls cert: %w", err)
		}
	}

	// 2. drop half a pair so openssl writes both files fresh
	for _, p := range []string{certPath, keyPath} {
		if err := m.filesystemHandler.Remove(p); err != nil && !m.filesystemHandler.IsNotExist(err) {
			return fmt.Errorf("ensure tls cert: %w", err)
		}
	}

	// 3. generate
	ips := make([]string, 0, len(cfg.IPAddresses))
	for _, ip := range cfg.IPAddresses {
		ips = append(ips, ip.String())
	}
	if err := m.toolchainHandler.GenerateServerCert(ctx, toolchain.ServerCertModel{
		CertOut:     certPath,
		KeyOut:      keyPath,
		CommonName:  cfg.CommonName,
		DNSNames:    cfg.DNSNames,
		IPAddresses: ips,
		Days:        cfg.days(),
	}); err != nil {
		return fmt.Errorf("ensure tls cert: %w", err)
	}

	// 4. permissions
	if err := m.filesystemHandler.Chmod(keyPath, 0o600); err != nil {
		return fmt.Errorf("ensure tls cert: %w", err)
	}
	if err := m.filesystemHandler.Chmod(certPath, 0o644); err != nil {
		return fmt.Errorf("ensure tls cert: %w", err)
	}

	log.Printf("[*] self-signed tls certificate created: %s", certPath)
	return nil
}
