package services

import (
	"fmt"
	"time"

	"github.com/backendservices/python-api/internal/models"
	"github.com/backendservices/python-api/internal/sysinfo"
	"github.com/backendservices/python-api/internal/validators"
)

const (
	healthyStatus = "healthy"
	dataMessage   = "data from python api"
)

// sampleItems is the fixed payload of GET /api/data
var sampleItems = []string{"item1", "item2", "item3"}

// InfoService builds the informational response documents.
// It holds no mutable state and is safe for concurrent use.
type InfoService struct {
	host sysinfo.Provider
	now  func() time.Time
}

// NewInfoService creates a new info service instance.
// A nil clock defaults to time.Now.
func NewInfoService(host sysinfo.Provider, now func() time.Time) *InfoService {
	if now == nil {
		now = time.Now
	}
	return &InfoService{
		host: host,
		now:  now,
	}
}

// Health returns the health check document
func (s *InfoService) Health() (*models.HealthResponse, error) {
	hostname, err := s.hostname()
	if err != nil {
		return nil, err
	}

	return &models.HealthResponse{
		Status:    healthyStatus,
		Service:   models.ServiceName,
		Hostname:  hostname,
		Timestamp: s.timestamp(),
	}, nil
}

// Data returns the sample data document
func (s *InfoService) Data() (*models.DataResponse, error) {
	hostname, err := s.hostname()
	if err != nil {
		return nil, err
	}

	return &models.DataResponse{
		Message:   dataMessage,
		Service:   models.ServiceName,
		Hostname:  hostname,
		Datetime:  models.NewDataItems(sampleItems...),
		Timestamp: s.timestamp(),
	}, nil
}

// Info returns the service and platform report
func (s *InfoService) Info() (*models.InfoResponse, error) {
	hostname, err := s.hostname()
	if err != nil {
		return nil, err
	}

	return &models.InfoResponse{
		Service:         models.ServiceName,
		Version:         models.ServiceVersion,
		Hostname:        hostname,
		Platform:        s.host.Platform(),
		PlatformVersion: s.host.RuntimeVersion(),
		Timestamp:       s.timestamp(),
	}, nil
}

// Hostname exposes the host name for the startup banner
func (s *InfoService) Hostname() (string, error) {
	return s.hostname()
}

func (s *InfoService) hostname() (string, error) {
	name, err := s.host.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname lookup failed: %w", err)
	}
	return name, nil
}

// timestamp is evaluated per call, never cached
func (s *InfoService) timestamp() string {
	return validators.FormatUTCTimestamp(s.now())
}
