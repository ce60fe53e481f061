package cert

import "context"

type CertHandler interface {
	EnsureSelfSignedCert(ctx context.Context, certPath string, keyPath string, cfg CertConfig) error
}
