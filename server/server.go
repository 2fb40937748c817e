// Package server is the thin HTTP adapter in front of the orchestrator. It
// carries no orchestration logic: handlers validate the request shape,
// delegate to Orchestrator.Handle and marshal the AgentResponse.
package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hupe1980/agentsim/orchestrator"
)

// Handler exposes the agent REST API.
type Handler struct {
	orch *orchestrator.Orchestrator
}

// NewHandler creates a Handler backed by the given orchestrator.
func NewHandler(orch *orchestrator.Orchestrator) *Handler {
	return &Handler{orch: orch}
}

// RegisterRoutes mounts the agent endpoints on the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/agent")
	g.POST("/chat", h.Chat)
	g.GET("/health", h.Health)
	g.GET("/sessions/:session_id/history", h.SessionHistory)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// Chat processes one user message.
// POST /api/agent/chat
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	res := h.orch.Handle(c.Request().Context(), req.Message, req.SessionID)
	return c.JSON(http.StatusOK, res)
}

// Health reports liveness.
// GET /api/agent/health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "UP",
		"service": h.orch.Profile().Service,
	})
}

// SessionHistory returns the ordered turn history of a session. Unknown
// identifiers yield an empty history, mirroring the store contract.
// GET /api/agent/sessions/:session_id/history
func (h *Handler) SessionHistory(c echo.Context) error {
	sessionID := c.Param("session_id")

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	turns, err := h.orch.Sessions().History(sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load history"})
	}
	if limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"sessionId": sessionID,
		"history":   turns,
	})
}
