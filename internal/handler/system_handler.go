package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pushuplog/internal/service"
)

// SystemHandler handles the root, health and statistics endpoints.
type SystemHandler struct {
	userService   service.UserService
	recordService service.RecordService
	version       string
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(userService service.UserService, recordService service.RecordService, version string) *SystemHandler {
	return &SystemHandler{userService: userService, recordService: recordService, version: version}
}

// InfoResponse describes the running API.
type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}

// StatisticsResponse carries per-entity row counts.
type StatisticsResponse struct {
	RecordCount   int64 `json:"record_count"`
	UserCount     int64 `json:"user_count"`
	TotalEntities int64 `json:"total_entities"`
}

// Root godoc
// @Summary API information
// @Tags system
// @Produce json
// @Success 200 {object} InfoResponse
// @Router / [get]
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, InfoResponse{
		Name:    "Pushuplog API",
		Version: h.version,
		Status:  "running",
	})
}

// Health godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  "connected",
	})
}

// Statistics godoc
// @Summary Database statistics
// @Tags system
// @Produce json
// @Success 200 {object} StatisticsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /statistics [get]
func (h *SystemHandler) Statistics(c echo.Context) error {
	ctx := c.Request().Context()
	recordCount, err := h.recordService.Count(ctx)
	if err != nil {
		return err
	}
	userCount, err := h.userService.Count(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, StatisticsResponse{
		RecordCount:   recordCount,
		UserCount:     userCount,
		TotalEntities: recordCount + userCount,
	})
}
