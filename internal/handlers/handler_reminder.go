package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/homevia/rent_ledger_app/internal/middleware"
)

const defaultSweepDaysBefore = 3

// reminderHandler handles HTTP requests that trigger reminder sweeps.
type reminderHandler struct {
	reminderService portssvc.ReminderSvcFacade
}

// newReminderHandler creates a new reminderHandler.
func newReminderHandler(reminderService portssvc.ReminderSvcFacade) *reminderHandler {
	return &reminderHandler{
		reminderService: reminderService,
	}
}

// runSweep godoc
// @Summary Run a reminder sweep
// @Description Scans leases due within the window, dispatches reminders per tenant preference and returns one result per candidate
// @Tags reminders
// @Accept  json
// @Produce  json
// @Param   sweep body dto.SweepRequest false "Sweep parameters"
// @Success 200 {object} dto.SweepResponse "Sweep summary"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /reminders/sweep [post]
func (h *reminderHandler) runSweep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sweepReq := dto.SweepRequest{DaysBefore: defaultSweepDaysBefore, IncludeOverdue: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&sweepReq); err != nil {
			logger.Error("Failed to bind JSON for RunSweep", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	results, err := h.reminderService.RunReminderSweep(c.Request.Context(), sweepReq.DaysBefore, sweepReq.IncludeOverdue)
	if err != nil {
		respondWithError(c, logger, err, "Failed to run reminder sweep")
		return
	}

	resp := dto.ToSweepResponse(results)
	logger.Info("Reminder sweep finished",
		slog.Int("candidates", resp.Candidates),
		slog.Int("sent", resp.SentCount))
	c.JSON(http.StatusOK, resp)
}

// registerReminderRoutes registers reminder specific routes
func registerReminderRoutes(group *gin.RouterGroup, reminderService portssvc.ReminderSvcFacade) {
	reminderHandler := newReminderHandler(reminderService)

	reminders := group.Group("/reminders")
	{
		reminders.POST("/sweep", reminderHandler.runSweep)
	}
}
