package main

import (
	"certmgr/internal/core/ca"

	"github.com/spf13/cobra"
)

var createRootCACmd = &cobra.Command{
	Use:   "createRootCA",
	Short: "Create the root CA",
	Long: `Generate an encrypted 4096-bit root key and a self-signed root
certificate. The passphrase comes from CERTMGR_ROOT_PASSPHRASE or a prompt.`,
	Args: cobra.NoArgs,
	RunE: runCreateRootCA,
}

var createInterCACmd = &cobra.Command{
	Use:   "createInterCA",
	Short: "Create the intermediate CA signed by the root CA",
	Long: `Generate an encrypted 4096-bit intermediate key, have the root CA sign
it and write the chain file. Both the root and the intermediate passphrase
are needed.`,
	Args: cobra.NoArgs,
	RunE: runCreateInterCA,
}

var (
	rootForce  bool
	interForce bool
)

func init() {
	createRootCACmd.Flags().BoolVarP(&rootForce, "force", "f", false, "Overwrite an existing root CA without asking")
	createInterCACmd.Flags().BoolVarP(&interForce, "force", "f", false, "Overwrite an existing intermediate CA without asking")
	rootCmd.AddCommand(createRootCACmd, createInterCACmd)
}

func runCreateRootCA(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	svc := newCAService()
	c.Step("Creating Root CA")

	overwrite := false
	if svc.RootCAExists() {
		c.Warn("Root CA already exists: %s", svc.Layout().RootCertPath())
		ok, err := confirmOverwrite("root CA", rootForce)
		if err != nil {
			return err
		}
		if !ok {
			c.Warn("aborted")
			return nil
		}
		overwrite = true
	}

	pass, err := passphrase(settings.RootPassphrase, "root CA passphrase", "CERTMGR_ROOT_PASSPHRASE", true)
	if err != nil {
		return err
	}

	result, err := svc.CreateRootCA(cmd.Context(), ca.ServiceRootCAModel{
		Passphrase: pass,
		Overwrite:  overwrite,
	})
	if err != nil {
		return err
	}

	c.Success("Root CA created: %s", result.Certificate)
	c.Text(result.Text)
	return nil
}

func runCreateInterCA(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	svc := newCAService()
	c.Step("Creating Intermediate CA")

	overwrite := false
	if svc.InterCAExists() {
		c.Warn("Intermediate CA already exists: %s", svc.Layout().InterCertPath())
		ok, err := confirmOverwrite("intermediate CA", interForce)
		if err != nil {
			return err
		}
		if !ok {
			c.Warn("aborted")
			return nil
		}
		overwrite = true
	}

	rootPass, err := passphrase(settings.RootPassphrase, "root CA passphrase", "CERTMGR_ROOT_PASSPHRASE", false)
	if err != nil {
		return err
	}
	interPass, err := passphrase(settings.InterPassphrase, "intermediate CA passphrase", "CERTMGR_INTER_PASSPHRASE", true)
	if err != nil {
		return err
	}

	result, err := svc.CreateInterCA(cmd.Context(), ca.ServiceInterCAModel{
		RootPassphrase: rootPass,
		Passphrase:     interPass,
		Overwrite:      overwrite,
	})
	if err != nil {
		return err
	}

	c.Success("Intermediate CA created: %s", result.Certificate)
	c.Success("Certificate chain: %s", result.Chain)
	c.Text(result.Text)
	return nil
}
