// Package index reads the flat-file database that `openssl ca` maintains.
//
// Each line holds six tab-separated fields: status flag, expiry date,
// revocation date (optionally ",reason"), hex serial, file name and subject.
package index

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const (
	StatusValid   = "valid"
	StatusRevoked = "revoked"
	StatusExpired = "expired"
	StatusUnknown = "unknown"
)

type Entry struct {
	Status           string `json:"status" yaml:"status"`
	Expiration       string `json:"expiration" yaml:"expiration"`
	RevocationDate   string `json:"revocation_date,omitempty" yaml:"revocation_date,omitempty"`
	RevocationReason string `json:"revocation_reason,omitempty" yaml:"revocation_reason,omitempty"`
	Serial           string `json:"serial" yaml:"serial"`
	Filename         string `json:"filename,omitempty" yaml:"filename,omitempty"`
	Subject          string `json:"subject" yaml:"subject"`
}

func (e Entry) IsValid() bool {
	return e.Status == StatusValid
}

// Parse reads index lines from r. Lines with fewer than six fields are
// skipped.
func Parse(r io.Reader) ([]Entry, error) {
	entries := []Entry{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		entry, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ReadFile parses the index at path. A missing file yields no entries.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func parseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Entry{}, false
	}
	parts := strings.Split(line, "\t")
	if len(parts) < 6 {
		return Entry{}, false
	}

	revocation, reason, _ := strings.Cut(parts[2], ",")
	return Entry{
		Status:           statusName(parts[0]),
		Expiration:       parts[1],
		RevocationDate:   revocation,
		RevocationReason: reason,
		Serial:           parts[3],
		Filename:         parts[4],
		Subject:          strings.Join(parts[5:], "\t"),
	}, true
}

func statusName(flag string) string {
	switch flag {
	case "V":
		return StatusValid
	case "R":
		return StatusRevoked
	case "E":
		return StatusExpired
	default:
		return StatusUnknown
	}
}
