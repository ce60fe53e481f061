package ism

type IsmStoreHandler interface {
	SetIssuanceState() error
}

type IsmHandler interface {
	StoreRequest(requestId string, info RequestInfo) error
	MarkIssued(csrPath string, certPath string, serial string) error
	MarkRevokedByCert(certPath string) error
	GetRequestList() ([]RequestInfo, error)
	GetRequestById(requestId string) (RequestInfo, error)
	FindByCSRPath(csrPath string) (RequestInfo, error)
}
