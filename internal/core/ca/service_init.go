package ca

import (
	"certmgr/internal/config"
	"certmgr/internal/utils"
	"fmt"
)

// == service: init ==
func (s *CAService) Init(initParameter ServiceInitModel) (config.Config, error) {
	const op = "init"

	var cfg config.Config
	err := s.lock.WithLock(func() error {
		// 1. directory tree, counters and templates
		if err := s.bootstrapManager.Setup(); err != nil {
			return fmt.Errorf("bootstrap failed: %w", err)
		}

		// 2. merge the supplied values into the stored config
		c, err := s.configStore.Update(func(c *config.Config) error {
			*c = c.Merge(config.Config{
				Country:      initParameter.Country,
				State:        initParameter.State,
				Locality:     initParameter.Locality,
				Organization: initParameter.Organization,
				RootCACN:     initParameter.RootCACN,
				InterCACN:    initParameter.InterCACN,
			})
			if err := c.Validate(); err != nil {
				return newError(op, KindInvalidInput, fmt.Errorf("%w: %v", ErrInvalidInput, err))
			}
			return nil
		})
		if err != nil {
			return err
		}

		// 3. render CA configs
		if err := s.renderCAConfigs(c); err != nil {
			return err
		}
		cfg = c
		return nil
	})
	if err != nil {
		return config.Config{}, err
	}

	s.logResult("initialized: %s", s.layout.ConfigPath)
	return cfg, nil
}

func (s *CAService) renderCAConfigs(cfg config.Config) error {
	location := map[string]string{
		"COUNTRY":  cfg.Country,
		"STATE":    cfg.State,
		"LOCALITY": cfg.Locality,
		"ORG":      cfg.Organization,
	}

	rootVars := map[string]string{
		"ROOT_CA_DIR": s.layout.RootCADir,
		"ROOT_CA_CN":  cfg.RootCACN,
	}
	interVars := map[string]string{
		"INTER_CA_DIR": s.layout.InterCADir,
		"INTER_CA_CN":  cfg.InterCACN,
		"CRL_DIR":      s.layout.CRLDir,
	}
	for k, v := range location {
		rootVars[k] = v
		interVars[k] = v
	}

	if err := s.renderer.Render(
		s.layout.TemplatePath(utils.RootTemplateName),
		s.layout.RootConfigPath,
		rootVars,
	); err != nil {
		return err
	}
	s.logResult("generated: %s", s.layout.RootConfigPath)

	if err := s.renderer.Render(
		s.layout.TemplatePath(utils.IntermediateTemplateName),
		s.layout.InterConfigPath,
		interVars,
	); err != nil {
		return err
	}
	s.logResult("generated: %s", s.layout.InterConfigPath)
	return nil
}
