package main

import (
	"certmgr/internal/core/ca"

	"github.com/spf13/cobra"
)

var createCertReqCmd = &cobra.Command{
	Use:   "createCertReq <common_name>",
	Short: "Create a private key and certificate signing request",
	Long: `Generate a 2048-bit key and a CSR for common_name. Subject alternative
names default to the common name and 127.0.0.1; in interactive mode they are
prompted for when no --san-dns/--san-ip flag is given.

Examples:
  certmgr createCertReq web.local
  certmgr createCertReq "*.example.local" --san-dns example.local --san-ip 10.0.0.5
  certmgr createCertReq alice --type client`,
	Args: cobra.ExactArgs(1),
	RunE: runCreateCertReq,
}

var (
	csrType   string
	csrSANDNS []string
	csrSANIP  []string
)

func init() {
	flags := createCertReqCmd.Flags()
	flags.StringVarP(&csrType, "type", "t", ca.CertTypeServer, "Certificate type: server, client")
	flags.StringSliceVar(&csrSANDNS, "san-dns", nil, "DNS subject alternative name (repeatable)")
	flags.StringSliceVar(&csrSANIP, "san-ip", nil, "IP subject alternative name (repeatable)")
	rootCmd.AddCommand(createCertReqCmd)
}

func runCreateCertReq(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	svc := newCAService()
	commonName := args[0]
	c.Step("Creating CSR for: %s", commonName)

	sanDNS, sanIP := csrSANDNS, csrSANIP
	if len(sanDNS) == 0 && len(sanIP) == 0 && !nonInteractive {
		dns, err := prompt.Ask("DNS SAN", commonName)
		if err != nil {
			return err
		}
		ip, err := prompt.Ask("IP SAN", "127.0.0.1")
		if err != nil {
			return err
		}
		sanDNS, sanIP = []string{dns}, []string{ip}
	}

	result, err := svc.CreateCertReq(cmd.Context(), ca.ServiceCertReqModel{
		CommonName: commonName,
		CertType:   csrType,
		SANDNS:     sanDNS,
		SANIP:      sanIP,
	})
	if err != nil {
		return err
	}

	c.Success("CSR created: %s", result.CSRFile)
	c.Success("Private key: %s", result.PrivateKey)
	c.Success("Request id: %s", result.RequestId)
	return nil
}
