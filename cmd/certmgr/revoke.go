package main

import (
	"certmgr/internal/core/ca"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var revokeCertCmd = &cobra.Command{
	Use:   "revokeCert <cert_file>",
	Short: "Revoke an issued certificate and regenerate the CRL",
	Long: fmt.Sprintf(`Revoke cert_file. A bare file name is looked up in the issued
certificates directory.

Reasons: %s`, strings.Join(ca.RevocationReasons, ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runRevokeCert,
}

var revokeReason string

func init() {
	revokeCertCmd.Flags().StringVarP(&revokeReason, "reason", "r", "", "Revocation reason")
	rootCmd.AddCommand(revokeCertCmd)
}

func runRevokeCert(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	svc := newCAService()

	certPath, err := resolveFile(args[0], svc.IssuedFile)
	if err != nil {
		return err
	}
	c.Step("Revoking certificate: %s", certPath)

	pass, err := passphrase(settings.InterPassphrase, "intermediate CA passphrase", "CERTMGR_INTER_PASSPHRASE", false)
	if err != nil {
		return err
	}

	result, err := svc.RevokeCert(cmd.Context(), ca.ServiceRevokeModel{
		CertFile:   certPath,
		Reason:     revokeReason,
		Passphrase: pass,
	})
	if err != nil {
		return err
	}

	c.Success("Certificate revoked: %s", result.Certificate)
	c.Success("CRL updated: %s", result.CRLFile)
	return nil
}
