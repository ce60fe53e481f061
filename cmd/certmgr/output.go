package main

import (
	"certmgr/internal/core/ca"
	"certmgr/internal/store/ism"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func statusIcon(c *console, status string) string {
	switch status {
	case "valid":
		return c.au.Green("✓").String()
	case "revoked":
		return c.au.Red("✗").String()
	}
	return c.au.Yellow("⚠").String()
}

func renderCertTable(c *console, certs []ca.Certificate) error {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tSERIAL\tSTATUS\tEXPIRES\tSUBJECT")
	for _, cert := range certs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", statusIcon(c, cert.Status), cert.Serial, cert.Status, cert.Expiration, cert.Subject)
	}
	return tw.Flush()
}

func renderRequestTable(c *console, list []ism.RequestInfo) error {
	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMMON NAME\tTYPE\tSTATE\tSERIAL\tREQUESTED")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.RequestId, r.CommonName, r.Type, r.State, r.Serial, r.RequestedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
