package server

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"rpcfi-flow-lab/internal/config"
	"rpcfi-flow-lab/internal/domain"
	"rpcfi-flow-lab/internal/projection"
)

// wsRequest is what the chart UI sends when the user switches scenario or
// mode; each request is answered with a freshly computed table.
type wsRequest struct {
	Scenario string `json:"scenario"`
	Mode     string `json:"mode"`
}

func (s *Server) handleWS(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	if s.metrics != nil {
		s.metrics.WSClients.Inc()
		defer s.metrics.WSClients.Dec()
	}
	s.logger.WithField("remote", conn.RemoteAddr().String()).Info("ws client connected")

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.WithError(err).Warn("ws read failed")
			}
			return
		}
		if req.Scenario == "" {
			req.Scenario = domain.ScenarioBase
		}

		if s.metrics != nil {
			s.metrics.WSMessages.Inc()
		}

		table, err := projection.Run(s.cfg, req.Scenario, req.Mode)
		if err != nil {
			resp := errorResponse{Error: err.Error()}
			var ce *config.Error
			if errors.As(err, &ce) {
				resp.Kind = string(ce.Kind)
				resp.Field = ce.Field
			}
			if werr := conn.WriteJSON(resp); werr != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(table); err != nil {
			return
		}
	}
}
