package ca

import (
	"certmgr/internal/config"
	"certmgr/internal/store/ism"
)

func (s *CAService) GetConfig() (config.Config, error) {
	return s.configStore.Load()
}

func (s *CAService) GetRequestList() ([]ism.RequestInfo, error) {
	return s.ismHandler.GetRequestList()
}
