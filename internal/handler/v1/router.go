package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/clinicdesk/clinicdesk/internal/middleware"
	"github.com/clinicdesk/clinicdesk/pkg/metrics"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Log         *zap.Logger
	Collector   *metrics.Collector
	Registry    *prometheus.Registry
	RateLimiter *middleware.RateLimiter

	Doctors      *DoctorHandler
	Patients     *PatientHandler
	Rooms        *RoomHandler
	Appointments *AppointmentHandler
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Observe(deps.Log, deps.Collector))
	if deps.RateLimiter != nil {
		r.Use(middleware.RateLimit(deps.RateLimiter))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))

	api := r.Group("/api/v1")
	deps.Doctors.Register(api)
	deps.Patients.Register(api)
	deps.Rooms.Register(api)
	deps.Appointments.Register(api)

	return r
}
