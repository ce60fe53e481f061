package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCertsCmd = &cobra.Command{
	Use:   "listCerts",
	Short: "List certificates recorded in the intermediate CA index",
	Args:  cobra.NoArgs,
	RunE:  runListCerts,
}

var listRequestsCmd = &cobra.Command{
	Use:   "listRequests",
	Short: "List signing requests and their issuance state",
	Args:  cobra.NoArgs,
	RunE:  runListRequests,
}

var (
	listCertsOutput    string
	listRequestsOutput string
)

func init() {
	listCertsCmd.Flags().StringVarP(&listCertsOutput, "output", "o", formatTable, "Output format: table, json, yaml")
	listRequestsCmd.Flags().StringVarP(&listRequestsOutput, "output", "o", formatTable, "Output format: table, json, yaml")
	rootCmd.AddCommand(listCertsCmd, listRequestsCmd)
}

func runListCerts(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	certs, err := newCAService().ListCerts()
	if err != nil {
		return err
	}

	if listCertsOutput != formatTable {
		return render(c.out, listCertsOutput, certs)
	}
	c.Step("Issued Certificates")
	if len(certs) == 0 {
		fmt.Fprintln(c.out, "No certificates issued yet")
		return nil
	}
	return renderCertTable(c, certs)
}

func runListRequests(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	list, err := newCAService().GetRequestList()
	if err != nil {
		return err
	}

	if listRequestsOutput != formatTable {
		return render(c.out, listRequestsOutput, list)
	}
	c.Step("Signing Requests")
	if len(list) == 0 {
		fmt.Fprintln(c.out, "No requests recorded yet")
		return nil
	}
	return renderRequestTable(c, list)
}
