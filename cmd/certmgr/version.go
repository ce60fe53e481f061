package main

import (
	"certmgr/internal/toolchain/openssl"
	"certmgr/internal/utils"
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the certmgr and openssl versions",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	fmt.Fprintf(c.out, "certmgr %s\n", c.au.Bold(utils.ServiceVersion))

	v, err := openssl.NewOpenSSLHandler(settings.OpenSSL).Version(cmd.Context())
	if err != nil {
		c.Warn("openssl not available: %v", err)
		return nil
	}
	fmt.Fprintln(c.out, v)
	return nil
}
