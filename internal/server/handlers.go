package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rpcfi-flow-lab/internal/config"
	"rpcfi-flow-lab/internal/domain"
	"rpcfi-flow-lab/internal/projection"
)

// errorResponse is the JSON body for rejected requests.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "chain": s.cfg.ChainName})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, s.cfg)
}

func (s *Server) handleProjection(c *gin.Context) {
	table, ok := s.runProjection(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, table)
}

func (s *Server) handleWeekly(c *gin.Context) {
	scenario, mode := requestParams(c)
	points, err := projection.ExpandWeekly(s.cfg, scenario, mode)
	if err != nil {
		s.rejectProjection(c, err)
		return
	}
	s.observeRun(scenario, mode)
	c.JSON(http.StatusOK, gin.H{"chain_name": s.cfg.ChainName, "scenario": scenario, "points": points})
}

func (s *Server) handleSummary(c *gin.Context) {
	table, ok := s.runProjection(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, projection.Summarize(table))
}

// runProjection executes the engine for the request's scenario/mode query
// parameters and writes the error response on failure.
func (s *Server) runProjection(c *gin.Context) (*domain.Table, bool) {
	scenario, mode := requestParams(c)

	start := time.Now()
	table, err := projection.Run(s.cfg, scenario, mode)
	if err != nil {
		s.rejectProjection(c, err)
		return nil, false
	}
	if s.metrics != nil {
		s.metrics.ProjectionDuration.Observe(time.Since(start).Seconds())
	}
	s.observeRun(table.Scenario, table.Mode)
	return table, true
}

func requestParams(c *gin.Context) (scenario, mode string) {
	scenario = c.DefaultQuery("scenario", domain.ScenarioBase)
	mode = c.Query("mode") // empty selects the config default
	return scenario, mode
}

func (s *Server) rejectProjection(c *gin.Context, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	var ce *config.Error
	if errors.As(err, &ce) {
		status = http.StatusBadRequest
		resp.Kind = string(ce.Kind)
		resp.Field = ce.Field
		if s.metrics != nil {
			s.metrics.ProjectionErrorsTotal.WithLabelValues(string(ce.Kind)).Inc()
		}
	}

	s.logger.WithError(err).Warn("projection request rejected")
	c.JSON(status, resp)
}

func (s *Server) observeRun(scenario, mode string) {
	if s.metrics != nil {
		s.metrics.ProjectionRunsTotal.WithLabelValues(scenario, mode).Inc()
	}
}
