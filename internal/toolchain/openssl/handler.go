package openssl

import (
	"bytes"
	"certmgr/internal/toolchain"
	"certmgr/internal/utils"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"al.essio.dev/pkg/shellescape"
)

// passphrases travel through the child environment, never argv
const (
	passInEnv  = "CERTMGR_PASSIN"
	passOutEnv = "CERTMGR_PASSOUT"
)

func NewOpenSSLHandler(binary string) *OpenSSLHandler {
	if binary == "" {
		binary = utils.DefaultOpenSSLBinary
	}
	return &OpenSSLHandler{
		binary:         binary,
		commandFactory: utils.NewCommandFactory(),
	}
}

type OpenSSLHandler struct {
	binary         string
	commandFactory utils.CommandFactory
}

func (h *OpenSSLHandler) GenerateKey(ctx context.Context, keyParameter toolchain.GenerateKeyModel) error {
	args := []string{"genrsa"}
	if keyParameter.Passphrase != "" {
		args = append(args, "-aes256", "-passout", "env:"+passOutEnv)
	}
	args = append(args, "-out", keyParameter.Out, strconv.Itoa(keyParameter.Bits))

	_, err := h.run(ctx, args, runSecrets{passOut: keyParameter.Passphrase})
	return err
}

func (h *OpenSSLHandler) SelfSign(ctx context.Context, selfSignParameter toolchain.SelfSignModel) error {
	args := []string{
		"req",
		"-config", selfSignParameter.Config,
		"-key", selfSignParameter.Key,
		"-new", "-x509",
		"-days", strconv.Itoa(selfSignParameter.Days),
		"-sha256",
		"-extensions", selfSignParameter.Extensions,
		"-out", selfSignParameter.Out,
	}
	args = withPassIn(args, selfSignParameter.Passphrase)

	_, err := h.run(ctx, args, runSecrets{passIn: selfSignParameter.Passphrase})
	return err
}

func (h *OpenSSLHandler) CreateRequest(ctx context.Context, requestParameter toolchain.CreateRequestModel) error {
	args := []string{
		"req",
		"-config", requestParameter.Config,
		"-key", requestParameter.Key,
		"-new", "-sha256",
		"-out", requestParameter.Out,
	}
	args = withPassIn(args, requestParameter.Passphrase)

	_, err := h.run(ctx, args, runSecrets{passIn: requestParameter.Passphrase})
	return err
}

func (h *OpenSSLHandler) SignRequest(ctx context.Context, signParameter toolchain.SignRequestModel) error {
	args := []string{
		"ca",
		"-config", signParameter.Config,
		"-extensions", signParameter.Extensions,
		"-days", strconv.Itoa(signParameter.Days),
		"-notext", "-md", "sha256",
		"-in", signParameter.In,
		"-out", signParameter.Out,
		"-batch",
	}
	args = withPassIn(args, signParameter.Passphrase)

	_, err := h.run(ctx, args, runSecrets{passIn: signParameter.Passphrase})
	return err
}

func (h *OpenSSLHandler) Revoke(ctx context.Context, revokeParameter toolchain.RevokeModel) error {
	args := []string{
		"ca",
		"-config", revokeParameter.Config,
		"-revoke", revokeParameter.Cert,
	}
	if revokeParameter.Reason != "" {
		args = append(args, "-crl_reason", revokeParameter.Reason)
	}
	args = withPassIn(args, revokeParameter.Passphrase)

	_, err := h.run(ctx, args, runSecrets{passIn: revokeParameter.Passphrase})
	return err
}

func (h *OpenSSLHandler) GenerateCRL(ctx context.Context, crlParameter toolchain.GenerateCRLModel) error {
	args := []string{
		"ca",
		"-config", crlParameter.Config,
		"-gencrl",
		"-out", crlParameter.Out,
	}
	args = withPassIn(args, crlParameter.Passphrase)

	_, err := h.run(ctx, args, runSecrets{passIn: crlParameter.Passphrase})
	return err
}

func (h *OpenSSLHandler) GenerateServerCert(ctx context.Context, serverParameter toolchain.ServerCertModel) error {
	args := []string{
		"req",
		"-x509",
		"-newkey", "rsa:4096",
		"-nodes",
		"-keyout", serverParameter.KeyOut,
		"-out", serverParameter.CertOut,
		"-days", strconv.Itoa(serverParameter.Days),
		"-subj", "/CN=" + serverParameter.CommonName,
	}
	var sans []string
	for _, d := range serverParameter.DNSNames {
		sans = append(sans, "DNS:"+d)
	}
	for _, ip := range serverParameter.IPAddresses {
		sans = append(sans, "IP:"+ip)
	}
	if len(sans) > 0 {
		args = append(args, "-addext", "subjectAltName="+strings.Join(sans, ","))
	}

	_, err := h.run(ctx, args, runSecrets{})
	return err
}

func (h *OpenSSLHandler) CertificateText(ctx context.Context, certPath string) (string, error) {
	out, err := h.run(ctx, []string{
		"x509",
		"-in", certPath,
		"-noout",
		"-text",
		"-certopt", "no_pubkey,no_sigdump",
	}, runSecrets{})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// CertificateSerial returns the hex serial as printed by `x509 -serial`.
func (h *OpenSSLHandler) CertificateSerial(ctx context.Context, certPath string) (string, error) {
	out, err := h.run(ctx, []string{
		"x509",
		"-in", certPath,
		"-noout",
		"-serial",
	}, runSecrets{})
	if err != nil {
		return "", err
	}
	return parseSerial(string(out))
}

func (h *OpenSSLHandler) CRLText(ctx context.Context, crlPath string) (string, error) {
	out, err := h.run(ctx, []string{
		"crl",
		"-in", crlPath,
		"-noout",
		"-text",
	}, runSecrets{})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *OpenSSLHandler) Version(ctx context.Context) (string, error) {
	out, err := h.run(ctx, []string{"version"}, runSecrets{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

type runSecrets struct {
	passIn  string
	passOut string
}

func (h *OpenSSLHandler) run(ctx context.Context, args []string, secrets runSecrets) ([]byte, error) {
	log.Printf("[*] running: %s", h.commandLine(args))

	cmd := h.commandFactory.Command(ctx, h.binary, args...)
	var envv []string
	if secrets.passIn != "" {
		envv = append(envv, passInEnv+"="+secrets.passIn)
	}
	if secrets.passOut != "" {
		envv = append(envv, passOutEnv+"="+secrets.passOut)
	}
	if len(envv) > 0 {
		cmd.SetEnv(envv)
	}

	var stdout, stderr bytes.Buffer
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)

	if err := cmd.Run(); err != nil {
		return nil, &toolchain.CommandError{
			Tool:     h.binary,
			Args:     args,
			ExitCode: cmd.ExitCode(),
			Stderr:   stderr.String(),
			Err:      err,
		}
	}
	return stdout.Bytes(), nil
}

func (h *OpenSSLHandler) commandLine(args []string) string {
	quoted := make([]string, 0, len(args)+1)
	quoted = append(quoted, shellescape.Quote(h.binary))
	for _, a := range args {
		quoted = append(quoted, shellescape.Quote(a))
	}
	return strings.Join(quoted, " ")
}

func withPassIn(args []string, passphrase string) []string {
	if passphrase == "" {
		return args
	}
	return append(args, "-passin", "env:"+passInEnv)
}

func parseSerial(out string) (string, error) {
	line := strings.TrimSpace(out)
	v, ok := strings.CutPrefix(line, "serial=")
	if !ok || v == "" {
		return "", fmt.Errorf("unexpected serial output: %q", line)
	}
	return v, nil
}
