package ism

import (
	"certmgr/internal/utils"
	"encoding/json"
	"fmt"
	"os"
)

func NewIsmStore(path string) *IsmStore {
	fs := utils.NewFilesystemExecutor()
	return &IsmStore{
		path:              path,
		lock:              utils.NewFileLock(path+".lock", fs),
		filesystemHandler: fs,
		newId:             utils.NewUlid,
	}
}

type IsmStore struct {
	path              string
	lock              *utils.FileLock
	filesystemHandler utils.FilesystemHandler
	newId             func() string
}

func (s *IsmStore) withLock(fn func(st *IssuanceState) error) error {
	return s.lock.WithLock(func() error {
		st, err := s.loadOrInit()
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
		return s.atomicSave(st)
	})
}

func (s *IsmStore) withRLock(fn func(st *IssuanceState) error) error {
	return s.lock.WithLock(func() error {
		st, err := s.loadOrInit()
		if err != nil {
			return err
		}
		return fn(st)
	})
}

func (s *IsmStore) loadOrInit() (*IssuanceState, error) {
	b, err := s.filesystemHandler.ReadFile(s.path)
	if err != nil {
		if s.filesystemHandler.IsNotExist(err) {
			return &IssuanceState{
				Version:  "0.1.0",
				Requests: map[string]RequestInfo{},
			}, nil
		}
		return nil, err
	}

	var st IssuanceState
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, fmt.Errorf("issuance state json broken: %w", err)
	}
	if st.Requests == nil {
		st.Requests = map[string]RequestInfo{}
	}
	return &st, nil
}

func (s *IsmStore) atomicSave(st *IssuanceState) error {
	tmp := s.path + ".tmp"

	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	f, err := s.filesystemHandler.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return s.filesystemHandler.Rename(tmp, s.path)
}

func (s *IsmStore) SetIssuanceState() error {
	return s.withLock(func(st *IssuanceState) error {
		st.Version = "0.1.0"
		if st.Requests == nil {
			st.Requests = map[string]RequestInfo{}
		}
		return nil
	})
}
