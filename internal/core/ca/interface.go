package ca

import (
	"certmgr/internal/config"
	"certmgr/internal/store/ism"
	"context"
)

type CAServiceHandler interface {
	Init(initParameter ServiceInitModel) (config.Config, error)
	CreateRootCA(ctx context.Context, rootParameter ServiceRootCAModel) (RootCAResult, error)
	CreateInterCA(ctx context.Context, interParameter ServiceInterCAModel) (InterCAResult, error)
	CreateCertReq(ctx context.Context, csrParameter ServiceCertReqModel) (CertReqResult, error)
	SignCert(ctx context.Context, signParameter ServiceSignModel) (SignResult, error)
	RevokeCert(ctx context.Context, revokeParameter ServiceRevokeModel) (RevokeResult, error)
	UpdateCRL(ctx context.Context, crlParameter ServiceCRLModel) (CRLResult, error)
	ListCerts() ([]Certificate, error)
	GetConfig() (config.Config, error)
	GetRequestList() ([]ism.RequestInfo, error)
	Locate(filename string) (string, error)
	CSRFile(filename string) (string, error)
	IssuedFile(filename string) (string, error)
	RootCAExists() bool
	InterCAExists() bool
}
