package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

type appInfoService struct {
	appVersion string
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports liveness with the current UTC time truncated to seconds.
func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    "ok",
		Timestamp: s.now().UTC().Truncate(time.Second),
	}
}
