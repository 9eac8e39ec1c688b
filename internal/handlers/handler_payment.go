package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/homevia/rent_ledger_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to rent payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
	}
}

// recordPayment godoc
// @Summary Record a rent payment
// @Description Records a settled payment against a lease and advances its next due date by one period
// @Tags leases
// @Accept  json
// @Produce  json
// @Param   leaseID path string true "Lease ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.LeaseResponse "The updated lease"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Lease not found"
// @Failure 409 {object} map[string]string "Lease is not active"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /leases/{leaseID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	leaseID := c.Param("leaseID")

	paymentReq := dto.RecordPaymentRequest{}
	if err := c.ShouldBindJSON(&paymentReq); err != nil {
		logger.Error("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	recorderUserID := requestActor(c)
	logger = logger.With(slog.String("lease_id", leaseID), slog.String("recorder_user_id", recorderUserID))

	lease, err := h.paymentService.RecordPayment(c.Request.Context(), leaseID, paymentReq, recorderUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded successfully",
		slog.String("amount", paymentReq.Amount.String()),
		slog.Time("next_due_date", lease.NextDueDate))
	c.JSON(http.StatusOK, dto.ToLeaseResponse(lease))
}
