package services

import (
	"context"

	"sankalp/internal/store"
)

// HealthResult is the body returned by the health check.
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthService implements the health service
type HealthService struct {
	store   *store.Store
	service string
}

// NewHealthService creates a new health service
func NewHealthService(s *store.Store, service string) *HealthService {
	return &HealthService{store: s, service: service}
}

// Check reports whether the data directory is usable.
func (s *HealthService) Check(ctx context.Context) (*HealthResult, error) {
	if err := s.store.HealthCheck(ctx); err != nil {
		return &HealthResult{Status: "unhealthy", Service: s.service}, err
	}
	return &HealthResult{Status: "healthy", Service: s.service}, nil
}
