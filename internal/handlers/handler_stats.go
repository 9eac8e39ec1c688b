package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homevia/rent_ledger_app/internal/core/domain"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/homevia/rent_ledger_app/internal/middleware"
)

// statsHandler handles HTTP requests for ledger statistics.
type statsHandler struct {
	statsService portssvc.StatsSvcFacade
}

// newStatsHandler creates a new statsHandler.
func newStatsHandler(statsService portssvc.StatsSvcFacade) *statsHandler {
	return &statsHandler{
		statsService: statsService,
	}
}

// getStatistics godoc
// @Summary Ledger statistics
// @Description Computes counts, sums and averages over leases and payments for the given scope
// @Tags statistics
// @Produce  json
// @Param   hostID query string false "Scope to a property owner"
// @Param   tenantID query string false "Scope to a tenant"
// @Param   period query string false "Income normalization period" Enums(weekly, monthly, yearly)
// @Success 200 {object} dto.StatsResponse "Aggregated figures"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 404 {object} map[string]string "Unknown host or tenant"
// @Router /stats [get]
func (h *statsHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.StatsParams{}
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for GetStatistics", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	filter := domain.StatsFilter{
		HostID:   params.HostID,
		TenantID: params.TenantID,
		Period:   domain.PaymentFrequency(params.Period),
	}

	stats, err := h.statsService.GetStatistics(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// registerStatsRoutes registers statistics specific routes
func registerStatsRoutes(group *gin.RouterGroup, statsService portssvc.StatsSvcFacade) {
	statsHandler := newStatsHandler(statsService)

	group.GET("/stats", statsHandler.getStatistics)
}
