package main

import (
	"certmgr/internal/config"
	"certmgr/internal/core/ca"
	"certmgr/internal/env"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	homeDir        string
	nonInteractive bool

	settings config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "certmgr",
	Short: "Two-tier PKI management on top of openssl",
	Long: `Manage a root CA, an intermediate CA and the certificates they issue.

All key material lives under the home directory (--home, CERTMGR_HOME or the
working directory):
  {home}/
    ├── conf/                  # certmgr_config.json, templates, rendered openssl configs
    ├── ca/root/               # root CA key and certificate
    ├── ca/intermediate/       # intermediate CA, index.txt, serial
    ├── csr/                   # certificate signing requests
    ├── private_keys/          # leaf private keys
    ├── issued_certificates/   # signed certificates
    ├── store/                 # request tracking state
    ├── log/                   # API audit log
    └── crl/                   # revocation lists

Passphrases are taken from CERTMGR_ROOT_PASSPHRASE and
CERTMGR_INTER_PASSPHRASE, or prompted for without echo.

Examples:
  certmgr init
  certmgr createRootCA
  certmgr createInterCA
  certmgr createCertReq web.local --san-dns web.local --san-dns www.web.local
  certmgr signCert web.local_20240115_120000.csr.pem
  certmgr listCerts -o yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Home directory (default: CERTMGR_HOME or working directory)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; fail when input is missing")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	if homeDir != "" {
		abs, err := filepath.Abs(homeDir)
		if err != nil {
			return err
		}
		// .env is looked up in the chosen home
		if err := os.Setenv("CERTMGR_HOME", abs); err != nil {
			return err
		}
	}
	s, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	settings = s
	return nil
}

func newCAService() *ca.CAService {
	return ca.NewCAService(env.NewLayout(settings.Home), settings)
}
