package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homevia/rent_ledger_app/internal/apperrors"
	portssvc "github.com/homevia/rent_ledger_app/internal/core/ports/services"
	"github.com/homevia/rent_ledger_app/internal/dto"
	"github.com/homevia/rent_ledger_app/internal/middleware"
)

// leaseHandler handles HTTP requests related to leases.
type leaseHandler struct {
	leaseService portssvc.LeaseSvcFacade
}

// newLeaseHandler creates a new leaseHandler.
func newLeaseHandler(leaseService portssvc.LeaseSvcFacade) *leaseHandler {
	return &leaseHandler{
		leaseService: leaseService,
	}
}

// createLease godoc
// @Summary Create a lease
// @Description Creates a lease, records its first rent_due ledger entry and marks the property rented, atomically
// @Tags leases
// @Accept  json
// @Produce  json
// @Param   lease body dto.CreateLeaseRequest true "Lease details"
// @Success 201 {object} dto.LeaseResponse "The created lease"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Property or tenant not found"
// @Failure 503 {object} map[string]string "Store or directory unavailable"
// @Router /leases [post]
func (h *leaseHandler) createLease(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateLeaseRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateLease", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID := requestActor(c)
	logger = logger.With(slog.String("creator_user_id", creatorUserID))

	lease, err := h.leaseService.CreateLease(c.Request.Context(), createReq, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create lease")
		return
	}

	logger.Info("Lease created successfully", slog.String("lease_id", lease.LeaseID))
	c.JSON(http.StatusCreated, dto.ToLeaseResponse(lease))
}

// getLease godoc
// @Summary Get a lease
// @Description Retrieves a single lease by its ID
// @Tags leases
// @Produce  json
// @Param   leaseID path string true "Lease ID"
// @Success 200 {object} dto.LeaseResponse "The lease"
// @Failure 404 {object} map[string]string "Lease not found"
// @Router /leases/{leaseID} [get]
func (h *leaseHandler) getLease(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	leaseID := c.Param("leaseID")

	lease, err := h.leaseService.GetLeaseByID(c.Request.Context(), leaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Lease not found", slog.String("lease_id", leaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
			return
		}
		respondWithError(c, logger, err, "Failed to retrieve lease")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaseResponse(lease))
}

// listLeases godoc
// @Summary List leases
// @Description Lists leases, optionally filtered by host and/or tenant
// @Tags leases
// @Produce  json
// @Param   hostID query string false "Filter by property owner"
// @Param   tenantID query string false "Filter by tenant"
// @Success 200 {array} dto.LeaseResponse "Matching leases"
// @Router /leases [get]
func (h *leaseHandler) listLeases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	hostID := c.Query("hostID")
	tenantID := c.Query("tenantID")

	leases, err := h.leaseService.ListLeases(c.Request.Context(), hostID, tenantID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list leases")
		return
	}

	logger.Debug("Leases listed", slog.Int("count", len(leases)))
	c.JSON(http.StatusOK, dto.ToLeaseResponses(leases))
}

// listLeaseTransactions godoc
// @Summary List a lease's ledger entries
// @Description Retrieves all ledger entries of a lease, oldest first
// @Tags leases
// @Produce  json
// @Param   leaseID path string true "Lease ID"
// @Success 200 {array} dto.TransactionResponse "Ledger entries"
// @Failure 404 {object} map[string]string "Lease not found"
// @Router /leases/{leaseID}/transactions [get]
func (h *leaseHandler) listLeaseTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	leaseID := c.Param("leaseID")

	txns, err := h.leaseService.ListTransactions(c.Request.Context(), leaseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Lease not found for transaction listing", slog.String("lease_id", leaseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
			return
		}
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// registerLeaseRoutes registers lease specific routes
func registerLeaseRoutes(group *gin.RouterGroup, leaseService portssvc.LeaseSvcFacade, paymentService portssvc.PaymentSvcFacade) {
	leaseHandler := newLeaseHandler(leaseService)
	paymentHandler := newPaymentHandler(paymentService)

	leases := group.Group("/leases")
	{
		leases.POST("", leaseHandler.createLease)
		leases.GET("", leaseHandler.listLeases)
		leases.GET("/:leaseID", leaseHandler.getLease)
		leases.GET("/:leaseID/transactions", leaseHandler.listLeaseTransactions)
		leases.POST("/:leaseID/payments", paymentHandler.recordPayment)
	}
}
