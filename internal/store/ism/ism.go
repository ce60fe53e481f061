package ism

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

func NewIsmManager(ismStore *IsmStore) *IsmManager {
	return &IsmManager{
		ismStore: ismStore,
	}
}

type IsmManager struct {
	ismStore *IsmStore
}

func (m *IsmManager) StoreRequest(requestId string, info RequestInfo) error {
	return m.ismStore.withLock(func(st *IssuanceState) error {
		info.RequestId = requestId
		if info.State == "" {
			info.State = StateRequested
		}
		if info.RequestedAt.IsZero() {
			info.RequestedAt = time.Now()
		}
		st.Requests[requestId] = info
		return nil
	})
}

// MarkIssued records the certificate issued for csrPath. Signing a CSR
// that was not created by certmgr registers it on the fly.
func (m *IsmManager) MarkIssued(csrPath string, certPath string, serial string) error {
	return m.ismStore.withLock(func(st *IssuanceState) error {
		now := time.Now()
		for id, r := range st.Requests {
			if r.CSRPath != csrPath {
				continue
			}
			r.CertPath = certPath
			r.Serial = serial
			r.State = StateIssued
			r.IssuedAt = now
			st.Requests[id] = r
			return nil
		}
		id := m.ismStore.newId()
		st.Requests[id] = RequestInfo{
			RequestId:   id,
			CSRPath:     csrPath,
			CertPath:    certPath,
			Serial:      serial,
			State:       StateIssued,
			RequestedAt: now,
			IssuedAt:    now,
		}
		return nil
	})
}

func (m *IsmManager) MarkRevokedByCert(certPath string) error {
	return m.ismStore.withLock(func(st *IssuanceState) error {
		for id, r := range st.Requests {
			if r.CertPath != certPath {
				continue
			}
			r.State = StateRevoked
			r.RevokedAt = time.Now()
			st.Requests[id] = r
			return nil
		}
		return fmt.Errorf("certificate=%s not registered", certPath)
	})
}

// GetRequestList returns all requests, oldest first.
func (m *IsmManager) GetRequestList() ([]RequestInfo, error) {
	list := []RequestInfo{}
	err := m.ismStore.withRLock(func(st *IssuanceState) error {
		for _, r := range st.Requests {
			list = append(list, r)
		}
		return nil
	})
	slices.SortFunc(list, func(a, b RequestInfo) int {
		return cmp.Compare(a.RequestId, b.RequestId)
	})
	return list, err
}

func (m *IsmManager) GetRequestById(requestId string) (RequestInfo, error) {
	var info RequestInfo
	err := m.ismStore.withRLock(func(st *IssuanceState) error {
		r, ok := st.Requests[requestId]
		if !ok {
			return fmt.Errorf("requestId=%s not found", requestId)
		}
		info = r
		return nil
	})
	return info, err
}

func (m *IsmManager) FindByCSRPath(csrPath string) (RequestInfo, error) {
	var info RequestInfo
	err := m.ismStore.withRLock(func(st *IssuanceState) error {
		for _, r := range st.Requests {
			if r.CSRPath == csrPath {
				info = r
				return nil
			}
		}
		return fmt.Errorf("csr=%s not registered", csrPath)
	})
	return info, err
}
