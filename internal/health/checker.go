package health

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Catalog is satisfied by *store.Store.
type Catalog interface {
	PropertyCount() int
}

// CheckResult represents the health of a single dependency.
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResult is the top-level health response.
type HealthResult struct {
	Status string                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// Checker verifies that the process is serving over a fully generated
// catalog. The store is the only dependency this service has.
type Checker struct {
	catalog     Catalog
	wantEntries int
	logger      *slog.Logger
	gauge       *prometheus.GaugeVec
}

// NewChecker creates a health checker and registers its Prometheus gauge.
func NewChecker(catalog Catalog, wantEntries int, logger *slog.Logger, reg prometheus.Registerer) *Checker {
	gauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "rqmobile",
		Name:      "health_check_up",
		Help:      "Whether a dependency is reachable. 1 = up, 0 = down.",
	}, []string{"dependency"})
	reg.MustRegister(gauge)

	return &Checker{
		catalog:     catalog,
		wantEntries: wantEntries,
		logger:      logger.With("component", "health"),
		gauge:       gauge,
	}
}

// Liveness returns a simple "up" response if the process is running.
func (c *Checker) Liveness(_ context.Context) HealthResult {
	return HealthResult{Status: "up"}
}

// Readiness reports down until the catalog holds every generated property.
func (c *Checker) Readiness(_ context.Context) HealthResult {
	result := HealthResult{
		Status: "up",
		Checks: make(map[string]CheckResult),
	}

	if got := c.catalog.PropertyCount(); got < c.wantEntries {
		c.logger.Warn("catalog health check failed", "got", got, "want", c.wantEntries)
		result.Status = "down"
		result.Checks["catalog"] = CheckResult{Status: "down", Error: "catalog incomplete"}
		c.gauge.WithLabelValues("catalog").Set(0)
	} else {
		result.Checks["catalog"] = CheckResult{Status: "up"}
		c.gauge.WithLabelValues("catalog").Set(1)
	}

	return result
}
