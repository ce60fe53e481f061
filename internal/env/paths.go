package env

import (
	"certmgr/internal/utils"
	"path/filepath"
)

// NewLayout derives every certmgr path from home.
func NewLayout(home string) Layout {
	if abs, err := filepath.Abs(home); err == nil {
		home = abs
	}
	caDir := filepath.Join(home, "ca")
	confDir := filepath.Join(home, "conf")
	return Layout{
		Home:            home,
		ConfDir:         confDir,
		CADir:           caDir,
		RootCADir:       filepath.Join(caDir, "root"),
		InterCADir:      filepath.Join(caDir, "intermediate"),
		CSRDir:          filepath.Join(home, "csr"),
		PrivateKeysDir:  filepath.Join(home, "private_keys"),
		IssuedDir:       filepath.Join(home, "issued_certificates"),
		CRLDir:          filepath.Join(home, "crl"),
		StoreDir:        filepath.Join(home, "store"),
		LogDir:          filepath.Join(home, "log"),
		ConfigPath:      filepath.Join(confDir, utils.ConfigFileName),
		RootConfigPath:  filepath.Join(confDir, utils.RootConfigName),
		InterConfigPath: filepath.Join(confDir, utils.IntermediateConfigName),
		LockPath:        filepath.Join(caDir, ".lock"),
	}
}

type Layout struct {
	Home            string
	ConfDir         string
	CADir           string
	RootCADir       string
	InterCADir      string
	CSRDir          string
	PrivateKeysDir  string
	IssuedDir       string
	CRLDir          string
	StoreDir        string
	LogDir          string
	ConfigPath      string
	RootConfigPath  string
	InterConfigPath string
	LockPath        string
}

func (l Layout) RootKeyPath() string {
	return filepath.Join(l.RootCADir, "private", utils.RootKeyName)
}

func (l Layout) RootCertPath() string {
	return filepath.Join(l.RootCADir, "certs", utils.RootCertName)
}

func (l Layout) InterKeyPath() string {
	return filepath.Join(l.InterCADir, "private", utils.IntermediateKeyName)
}

func (l Layout) InterCSRPath() string {
	return filepath.Join(l.InterCADir, "csr", utils.IntermediateCSRName)
}

func (l Layout) InterCertPath() string {
	return filepath.Join(l.InterCADir, "certs", utils.IntermediateCertName)
}

func (l Layout) ChainCertPath() string {
	return filepath.Join(l.InterCADir, "certs", utils.ChainCertName)
}

func (l Layout) InterIndexPath() string {
	return filepath.Join(l.InterCADir, utils.IndexFileName)
}

func (l Layout) CRLPath() string {
	return filepath.Join(l.CRLDir, utils.CRLFileName)
}

func (l Layout) RequestStorePath() string {
	return filepath.Join(l.StoreDir, utils.RequestStoreName)
}

func (l Layout) AuditLogPath() string {
	return filepath.Join(l.LogDir, utils.AuditLogName)
}

func (l Layout) TemplatePath(name string) string {
	return filepath.Join(l.ConfDir, name)
}

// directories created by bootstrap, in creation order
func (l Layout) directories() []string {
	dirs := []string{l.ConfDir, l.CADir}
	for _, ca := range l.caDirs() {
		dirs = append(dirs,
			ca,
			filepath.Join(ca, "certs"),
			filepath.Join(ca, "crl"),
			filepath.Join(ca, "newcerts"),
			filepath.Join(ca, "private"),
		)
	}
	dirs = append(dirs,
		filepath.Join(l.InterCADir, "csr"),
		l.CSRDir,
		l.PrivateKeysDir,
		l.IssuedDir,
		l.CRLDir,
		l.StoreDir,
		l.LogDir,
	)
	return dirs
}

func (l Layout) privateDirs() []string {
	return []string{
		filepath.Join(l.RootCADir, "private"),
		filepath.Join(l.InterCADir, "private"),
		l.PrivateKeysDir,
	}
}

func (l Layout) caDirs() []string {
	return []string{l.RootCADir, l.InterCADir}
}
