package toolchain

import "context"

type ToolchainHandler interface {
	GenerateKey(ctx context.Context, keyParameter GenerateKeyModel) error
	SelfSign(ctx context.Context, selfSignParameter SelfSignModel) error
	CreateRequest(ctx context.Context, requestParameter CreateRequestModel) error
	SignRequest(ctx context.Context, signParameter SignRequestModel) error
	Revoke(ctx context.Context, revokeParameter RevokeModel) error
	GenerateCRL(ctx context.Context, crlParameter GenerateCRLModel) error
	GenerateServerCert(ctx context.Context, serverParameter ServerCertModel) error
	CertificateText(ctx context.Context, certPath string) (string, error)
	CertificateSerial(ctx context.Context, certPath string) (string, error)
	CRLText(ctx context.Context, crlPath string) (string, error)
	Version(ctx context.Context) (string, error)
}
