package certificate

import (
	"certmgr/internal/core/ca"
	"certmgr/internal/store/ism"
	"encoding/json"
)

// StringList accepts either a JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		if one == "" {
			*l = nil
		} else {
			*l = StringList{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// == csr ==
type CreateCSRRequest struct {
	CommonName string     `json:"common_name" example:"example.local"`
	CertType   string     `json:"cert_type,omitempty" example:"server"`
	SANDNS     StringList `json:"san_dns,omitempty" swaggertype:"array,string" example:"*.example.local"`
	SANIP      StringList `json:"san_ip,omitempty" swaggertype:"array,string" example:"192.168.1.100"`
}

// == sign ==
type SignCertRequest struct {
	CSRFilename string `json:"csr_filename" example:"example.local_20240115_120000.csr.pem"`
	CertType    string `json:"cert_type,omitempty" example:"server"`
	Passphrase  string `json:"passphrase,omitempty"`
}

// == revoke ==
type RevokeCertRequest struct {
	CertFilename string `json:"cert_filename" example:"example.local_20240115_120000.cert.pem"`
	Reason       string `json:"reason,omitempty" example:"keyCompromise"`
	Passphrase   string `json:"passphrase,omitempty"`
}

// == crl ==
type UpdateCRLRequest struct {
	Passphrase string `json:"passphrase,omitempty"`
}

// == list ==
type ListCertsResponse struct {
	Certificates []ca.Certificate `json:"certificates"`
	Count        int              `json:"count"`
}

type ListRequestsResponse struct {
	Requests []ism.RequestInfo `json:"requests"`
	Count    int               `json:"count"`
}
