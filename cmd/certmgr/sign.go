package main

import (
	"certmgr/internal/core/ca"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var signCertCmd = &cobra.Command{
	Use:   "signCert <csr_file>",
	Short: "Sign a CSR with the intermediate CA",
	Long: `Issue a certificate from csr_file. A bare file name is looked up in the
csr directory; anything else is taken as a path.`,
	Args: cobra.ExactArgs(1),
	RunE: runSignCert,
}

var signType string

func init() {
	signCertCmd.Flags().StringVarP(&signType, "type", "t", ca.CertTypeServer, "Certificate type: server, client")
	rootCmd.AddCommand(signCertCmd)
}

func runSignCert(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	svc := newCAService()

	csrPath, err := resolveFile(args[0], svc.CSRFile)
	if err != nil {
		return err
	}
	c.Step("Signing certificate: %s", csrPath)

	pass, err := passphrase(settings.InterPassphrase, "intermediate CA passphrase", "CERTMGR_INTER_PASSPHRASE", false)
	if err != nil {
		return err
	}

	result, err := svc.SignCert(cmd.Context(), ca.ServiceSignModel{
		CSRFile:    csrPath,
		CertType:   signType,
		Passphrase: pass,
	})
	if err != nil {
		return err
	}

	c.Success("Certificate issued: %s (serial %s)", result.Certificate, result.Serial)
	c.Text(result.Text)
	return nil
}

// resolveFile maps a bare file name through byName and returns paths
// unchanged.
func resolveFile(arg string, byName func(string) (string, error)) (string, error) {
	if strings.ContainsRune(arg, filepath.Separator) {
		return filepath.Abs(arg)
	}
	return byName(arg)
}
