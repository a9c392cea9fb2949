package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkamau/tillpoint/internal/application/service"
	"github.com/mkamau/tillpoint/internal/domain/enum"
	"github.com/mkamau/tillpoint/internal/domain/ledger"
	"github.com/mkamau/tillpoint/internal/presentation/http/dto/request"
	"github.com/mkamau/tillpoint/internal/presentation/http/dto/response"
)

// CheckoutHandler handles checkout HTTP requests
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout processes a sale, rental or return
// @Summary Checkout
// @Description Process a cart atomically: transaction, line items, stock and credit
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body request.CheckoutRequest true "Checkout request"
// @Success 201 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	employeeID := GetEmployeeID(c)
	if employeeID == nil {
		response.Unauthorized(c, "Employee not authenticated")
		return
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			response.BadRequest(c, "Invalid due date, expected YYYY-MM-DD")
			return
		}
		dueDate = &parsed
	}

	entries := make([]ledger.CartEntry, 0, len(req.Items))
	for _, item := range req.Items {
		entries = append(entries, ledger.CartEntry{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	out, err := h.checkoutService.Checkout(c.Request.Context(), &service.CheckoutInput{
		EmployeeID:    *employeeID,
		CustomerID:    req.CustomerID,
		Type:          enum.TransactionType(req.Type),
		Entries:       entries,
		DueDate:       dueDate,
		PaymentMethod: req.PaymentMethod,
		UseCredit:     req.UseCredit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction successful", gin.H{
		"transaction": out.Transaction,
		"credit_used": out.CreditUsed,
		"final_total": out.FinalTotal,
	})
}
