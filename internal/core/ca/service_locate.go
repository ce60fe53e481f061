package ca

import (
	"path/filepath"
	"strings"
)

// == service: locate ==

// Locate resolves a downloadable file name against the issued, CSR and
// CRL directories, in that order.
func (s *CAService) Locate(filename string) (string, error) {
	const op = "locate"
	if err := validateBaseName(op, filename); err != nil {
		return "", err
	}
	for _, dir := range []string{s.layout.IssuedDir, s.layout.CSRDir, s.layout.CRLDir} {
		p := filepath.Join(dir, filename)
		fi, err := s.filesystemHandler.Stat(p)
		if err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}
	return "", notFound(op, "file %s", filename)
}

func (s *CAService) CSRFile(filename string) (string, error) {
	if err := validateBaseName("csrFile", filename); err != nil {
		return "", err
	}
	return filepath.Join(s.layout.CSRDir, filename), nil
}

func (s *CAService) IssuedFile(filename string) (string, error) {
	if err := validateBaseName("issuedFile", filename); err != nil {
		return "", err
	}
	return filepath.Join(s.layout.IssuedDir, filename), nil
}

func validateBaseName(op string, filename string) error {
	if filename == "" || filename == "." {
		return invalidInput(op, "filename is required")
	}
	if strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return invalidInput(op, "filename %q must not contain path elements", filename)
	}
	return nil
}
