package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mkamau/tillpoint/internal/application/service"
	"github.com/mkamau/tillpoint/internal/presentation/http/dto/response"
	"github.com/mkamau/tillpoint/pkg/pagination"
)

// RentalHandler handles rental HTTP requests
type RentalHandler struct {
	rentalService *service.RentalService
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalService *service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

// Get retrieves a rental by ID
func (h *RentalHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid rental ID")
		return
	}

	rental, err := h.rentalService.GetRental(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Rental retrieved", rental)
}

// List lists rentals; ?open=true restricts to unreturned ones and
// ?overdue=true to unreturned ones past their due date.
func (h *RentalHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	params.Validate()

	openOnly := c.Query("open") == "true"
	overdueOnly := c.Query("overdue") == "true"

	result, err := h.rentalService.ListRentals(c.Request.Context(), params, openOnly, overdueOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Rentals retrieved", result)
}
