package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is a dependency the health endpoint can probe.
type Pinger interface {
	Ping() error
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	checks  map[string]Pinger
	version string
}

// NewHealthController probes each named dependency on every request.
func NewHealthController(version string, checks map[string]Pinger) *HealthController {
	return &HealthController{
		checks:  checks,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	if _, ok := h.checks["database"]; !ok {
		checks["database"] = "not configured"
	}
	for name, dep := range h.checks {
		if err := dep.Ping(); err != nil {
			checks[name] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks[name] = "ok"
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
