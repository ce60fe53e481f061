package ca

import "certmgr/internal/index"

// == service: list certificates ==
func (s *CAService) ListCerts() ([]Certificate, error) {
	entries, err := s.indexReader(s.layout.InterIndexPath())
	if err != nil {
		return nil, err
	}
	return ToCertificates(entries), nil
}

func ToCertificates(entries []index.Entry) []Certificate {
	certs := make([]Certificate, 0, len(entries))
	for _, e := range entries {
		c := Certificate{
			Status:           e.Status,
			Serial:           e.Serial,
			Subject:          e.Subject,
			Expiration:       e.Expiration,
			RevocationReason: e.RevocationReason,
			Filename:         e.Filename,
		}
		if e.RevocationDate != "" {
			d := e.RevocationDate
			c.RevocationDate = &d
		}
		certs = append(certs, c)
	}
	return certs
}
