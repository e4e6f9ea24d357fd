// Payment and order HTTP handlers.
//
//   - POST /process-payment  (mock charge; guests allowed; Idempotency-Key replay)
//   - GET  /order/:id        (single order, auth required)
//   - GET  /orders           (paginated order history, auth required)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-store/go-store-backend/internal/domain"
	"github.com/lunara-store/go-store-backend/internal/http/middleware"
	"github.com/lunara-store/go-store-backend/internal/services"
	"github.com/lunara-store/go-store-backend/internal/utils"
)

// ProcessPaymentRequest is the JSON payload for the mock checkout. No card
// data is accepted; the method is a label only.
type ProcessPaymentRequest struct {
	Method string             `json:"method" example:"upi"`
	Amount float64            `json:"amount" example:"1499"`
	Items  []domain.OrderItem `json:"items"`
}

// ProcessPaymentResponse reports a confirmed charge.
type ProcessPaymentResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// OrderResponse wraps a single order.
type OrderResponse struct {
	Success bool         `json:"success"`
	Order   domain.Order `json:"order"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// OrdersResponse wraps a page of the user's order history.
type OrdersResponse struct {
	Success    bool           `json:"success"`
	Orders     []domain.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// ProcessPayment godoc
// @ID          processPayment
// @Summary     Process a mock payment
// @Description Validates the order, simulates the charge, and persists a confirmed order. Retries with the same Idempotency-Key replay the first outcome.
// @Tags        Payments
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false  "Retry deduplication key"
// @Param       body             body    handlers.ProcessPaymentRequest  true  "Checkout payload"
//
// @Success     200  {object}  handlers.ProcessPaymentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid order details"
// @Failure     402  {object}  handlers.ErrorResponse  "Payment declined"
// @Router      /process-payment [post]
func (h *Handlers) ProcessPayment(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	// Serve a stored outcome for retried requests before touching the
	// gateway; charging twice is the one failure mode this endpoint must
	// never have. The lookup runs here rather than trusting IsReplay alone
	// because the middleware may have resolved the key under the guest
	// identity before authentication.
	key, hasKey := middleware.GetIdempotencyKey(c)
	if hasKey {
		if order, err := h.paySvc.Replay(ctx, uid, key); err == nil {
			ok(c, http.StatusOK, ProcessPaymentResponse{Success: true, OrderID: order.ID})
			return
		}
	}

	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	order, err := h.paySvc.Process(ctx, uid, req.Method, req.Amount, req.Items)
	switch {
	case errors.Is(err, services.ErrInvalidOrder):
		fail(c, http.StatusBadRequest, ErrCodeInvalidOrder, "Invalid order details")
		return
	case errors.Is(err, services.ErrPaymentDeclined):
		fail(c, http.StatusPaymentRequired, ErrCodePaymentDeclined, "Payment declined. Please check your payment details.")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}

	if hasKey {
		if err := h.paySvc.RecordKey(ctx, uid, key, order.ID, http.StatusOK); err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency record failed")
		}
	}
	ok(c, http.StatusOK, ProcessPaymentResponse{Success: true, OrderID: order.ID})
}

// GetOrder godoc
// @ID          getOrder
// @Summary     Fetch a single order
// @Tags        Payments
// @Produce     json
//
// @Param       Authorization  header  string  true  "Bearer token"
// @Param       id             path    string  true  "Order id"
//
// @Success     200  {object}  handlers.OrderResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Failure     404  {object}  handlers.ErrorResponse  "Order not found"
// @Router      /order/{id} [get]
func (h *Handlers) GetOrder(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "Please log in to view your orders")
		return
	}
	order, err := h.paySvc.Order(c.Request.Context(), uid, c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "Order not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, OrderResponse{Success: true, Order: *order})
}

// ListOrders godoc
// @ID          listOrders
// @Summary     List the current user's orders (paginated)
// @Tags        Payments
// @Produce     json
//
// @Param       Authorization  header  string  true   "Bearer token"
// @Param       page           query   int     false  "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false  "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  handlers.OrdersResponse
// @Failure     401  {object}  handlers.ErrorResponse  "Not logged in"
// @Router      /orders [get]
func (h *Handlers) ListOrders(c *gin.Context) {
	uid := userID(c)
	if uid == "" {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "Please log in to view your orders")
		return
	}

	orders, err := h.paySvc.Orders(c.Request.Context(), uid)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	page, pageSize := clampPagination(c)
	total := len(orders)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	ok(c, http.StatusOK, OrdersResponse{
		Success: true,
		Orders:  orders[start:end],
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}
