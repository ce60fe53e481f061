package toolchain

// GenerateKeyModel describes an RSA private key.
// An empty Passphrase writes the key unencrypted.
type GenerateKeyModel struct {
	Out        string
	Bits       int
	Passphrase string
}

// SelfSignModel describes a self-signed CA certificate.
type SelfSignModel struct {
	Config     string
	Key        string
	Passphrase string
	Days       int
	Extensions string
	Out        string
}

type CreateRequestModel struct {
	Config     string
	Key        string
	Passphrase string
	Out        string
}

// SignRequestModel describes `openssl ca` signing In into Out.
// Passphrase unlocks the CA key referenced by Config.
type SignRequestModel struct {
	Config     string
	Extensions string
	Days       int
	In         string
	Out        string
	Passphrase string
}

type RevokeModel struct {
	Config     string
	Cert       string
	Reason     string
	Passphrase string
}

type GenerateCRLModel struct {
	Config     string
	Out        string
	Passphrase string
}

// ServerCertModel describes a throwaway self-signed TLS pair.
type ServerCertModel struct {
	CertOut     string
	KeyOut      string
	CommonName  string
	DNSNames    []string
	IPAddresses []string
	Days        int
}
