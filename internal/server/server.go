// Package server exposes projections over HTTP and WebSocket for the
// browser chart UI.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"rpcfi-flow-lab/internal/domain"
	"rpcfi-flow-lab/internal/observability"
)

// Server serves projection runs for one loaded chain config.
type Server struct {
	cfg      *domain.Config
	logger   *log.Logger
	metrics  *observability.Metrics
	upgrader websocket.Upgrader
}

// New creates a server around an immutable config.
func New(cfg *domain.Config, logger *log.Logger, metrics *observability.Metrics) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The chart UI is served from arbitrary local origins.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.instrument())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(observability.Handler()))
	r.GET("/ws", s.handleWS)

	api := r.Group("/api/v1")
	{
		api.GET("/config", s.handleConfig)
		api.GET("/projection", s.handleProjection)
		api.GET("/projection/weekly", s.handleWeekly)
		api.GET("/summary", s.handleSummary)
	}

	return r
}

// instrument records request counts and latency per route.
func (s *Server) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.metrics == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		s.metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		s.metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
