package env

import (
	"certmgr/internal/store/ism"
	"certmgr/internal/template"
	"certmgr/internal/utils"
	"log"
	"path/filepath"
)

func NewBootstrapManager(layout Layout) *BootstrapManager {
	return &BootstrapManager{
		layout:            layout,
		filesystemHandler: utils.NewFilesystemExecutor(),
		ismStoreHandler:   ism.NewIsmStore(layout.RequestStorePath()),
	}
}

type BootstrapManager struct {
	layout            Layout
	filesystemHandler utils.FilesystemHandler
	ismStoreHandler   ism.IsmStoreHandler
}

// Setup prepares the CA directory tree under the layout home. Existing
// counters, indexes and templates are left untouched.
func (m *BootstrapManager) Setup() error {
	// 1. create directories
	if err := m.setupDirectories(); err != nil {
		return err
	}

	// 2. restrict private key directories
	if err := m.setupPrivateDirectories(); err != nil {
		return err
	}

	// 3. CA database files
	if err := m.setupCADatabase(); err != nil {
		return err
	}

	// 4. seed templates
	if err := m.setupTemplates(); err != nil {
		return err
	}

	// 5. setup ISM (Issuance State Management)
	if err := m.setupIsm(); err != nil {
		return err
	}

	return nil
}

func (m *BootstrapManager) setupDirectories() error {
	for _, dir := range m.layout.directories() {
		if err := m.filesystemHandler.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

func (m *BootstrapManager) setupPrivateDirectories() error {
	for _, dir := range m.layout.privateDirs() {
		if err := m.filesystemHandler.Chmod(dir, 0o700); err != nil {
			return err
		}
	}
	return nil
}

func (m *BootstrapManager) setupCADatabase() error {
	for _, ca := range m.layout.caDirs() {
		files := []struct {
			name    string
			content string
		}{
			{name: utils.IndexFileName, content: ""},
			{name: utils.SerialFileName, content: utils.InitialSerial},
			{name: utils.CRLNumberFileName, content: utils.InitialCRLNumber},
		}
		for _, f := range files {
			path := filepath.Join(ca, f.name)
			if m.filesystemHandler.IsExist(path) {
				continue
			}
			if err := m.filesystemHandler.WriteFile(path, []byte(f.content), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *BootstrapManager) setupTemplates() error {
	written, err := template.NewRenderer().SeedDefaults(m.layout.ConfDir)
	if err != nil {
		return err
	}
	for _, w := range written {
		log.Printf("[*] template seeded: %s", w)
	}
	return nil
}

func (m *BootstrapManager) setupIsm() error {
	return m.ismStoreHandler.SetIssuanceState()
}
