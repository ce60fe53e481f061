package main

import (
	"certmgr/internal/core/ca"

	"github.com/spf13/cobra"
)

var updateCRLCmd = &cobra.Command{
	Use:   "updateCRL",
	Short: "Regenerate the intermediate CA revocation list",
	Args:  cobra.NoArgs,
	RunE:  runUpdateCRL,
}

func init() {
	rootCmd.AddCommand(updateCRLCmd)
}

func runUpdateCRL(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	svc := newCAService()
	c.Step("Updating CRL")

	pass, err := passphrase(settings.InterPassphrase, "intermediate CA passphrase", "CERTMGR_INTER_PASSPHRASE", false)
	if err != nil {
		return err
	}

	result, err := svc.UpdateCRL(cmd.Context(), ca.ServiceCRLModel{Passphrase: pass})
	if err != nil {
		return err
	}

	c.Success("CRL updated: %s", result.CRLFile)
	c.Text(result.Text)
	return nil
}
