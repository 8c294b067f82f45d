package usecase

import (
	"context"
	"log/slog"
	"sort"

	"remixjokes/src/core/ports"
)

// HealthService checks the storage and any optional external services.
type HealthService struct {
	log        *slog.Logger
	db         ports.Repository
	components map[string]ports.ExternalService
}

// NewHealthService creates a new HealthService.
// Nil entries in components are skipped, so optional services can be passed unconditionally.
func NewHealthService(log *slog.Logger, db ports.Repository, components map[string]ports.ExternalService) *HealthService {
	filtered := make(map[string]ports.ExternalService, len(components))
	for name, c := range components {
		if c != nil {
			filtered[name] = c
		}
	}
	return &HealthService{
		log:        log,
		db:         db,
		components: filtered,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy reports whether every component answered.
func (h *HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

// Check performs a health check of all application components.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	checks := map[string]func(context.Context) error{}
	if s.db != nil {
		checks["database"] = s.db.Health
	}
	for name, c := range s.components {
		checks[name] = c.Health
	}

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := checks[name](ctx); err != nil {
			s.log.Warn("health check failed", "component", name, "error", err)
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}
