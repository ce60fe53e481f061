package monitor

import (
	"certmgr/internal/core/ca"
	"certmgr/internal/env"
	"certmgr/internal/index"
	"context"
)

// CAService is the part of the CA service the monitor drives.
type CAService interface {
	Layout() env.Layout
	InterCAExists() bool
	UpdateCRL(ctx context.Context, crlParameter ca.ServiceCRLModel) (ca.CRLResult, error)
	SetIndexReader(reader func(path string) ([]index.Entry, error))
}
