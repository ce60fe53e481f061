package main

import (
	"certmgr/internal/core/ca"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the directory layout and CA configuration",
	Long: `Create the directory layout, seed the openssl templates and write
certmgr_config.json. Values not given as flags are prompted for, with the
current configuration as default. Re-running init keeps existing CA material.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initCountry      string
	initState        string
	initLocality     string
	initOrganization string
	initRootCN       string
	initInterCN      string
)

func init() {
	flags := initCmd.Flags()
	flags.StringVar(&initCountry, "country", "", "Country code (2 letters)")
	flags.StringVar(&initState, "state", "", "State or province")
	flags.StringVar(&initLocality, "locality", "", "Locality or city")
	flags.StringVar(&initOrganization, "organization", "", "Organization name")
	flags.StringVar(&initRootCN, "root-cn", "", "Root CA common name")
	flags.StringVar(&initInterCN, "inter-cn", "", "Intermediate CA common name")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	c := newConsole(cmd)
	svc := newCAService()
	c.Step("Initializing certificate management system")

	current, err := svc.GetConfig()
	if err != nil {
		return err
	}

	var parameter ca.ServiceInitModel
	fields := []struct {
		flag  string
		label string
		def   string
		dst   *string
	}{
		{initCountry, "Country", current.Country, &parameter.Country},
		{initState, "State", current.State, &parameter.State},
		{initLocality, "Locality", current.Locality, &parameter.Locality},
		{initOrganization, "Organization", current.Organization, &parameter.Organization},
		{initRootCN, "Root CA CN", current.RootCACN, &parameter.RootCACN},
		{initInterCN, "Intermediate CA CN", current.InterCACN, &parameter.InterCACN},
	}
	for _, f := range fields {
		v, err := askOr(f.flag, f.label, f.def)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	cfg, err := svc.Init(parameter)
	if err != nil {
		return err
	}

	c.Success("Initialization complete")
	c.Success("Configuration: %s", svc.Layout().ConfigPath)
	c.Success("Organization: %s (%s)", cfg.Organization, cfg.Country)
	return nil
}
