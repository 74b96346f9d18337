package service

import (
	"context"

	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"
)

const maxLogPageSize = 100

type ISystemService interface {
	GetLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error)
	GetLog(ctx context.Context, id string) (*logger.LogEntry, error)
}

type systemService struct {
	logger logger.ILogger
}

// NewSystemService exposes the entries of the given logger's file.
func NewSystemService(logger logger.ILogger) ISystemService {
	return &systemService{logger: logger}
}

func (s *systemService) GetLogs(ctx context.Context, page, limit int, level string) ([]logger.LogEntry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxLogPageSize {
		limit = 10
	}

	logs, err := s.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, apperror.Storage(err, "read logs")
	}
	return logs, nil
}

func (s *systemService) GetLog(ctx context.Context, id string) (*logger.LogEntry, error) {
	entry, err := s.logger.GetLogById(id)
	if err != nil {
		return nil, apperror.NotFound("log", id)
	}
	return entry, nil
}
