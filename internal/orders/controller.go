package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// SubmitOrder handles POST /api/v1/orders.
//
// The response body always follows the submission contract: 2xx carries
// `{success:true, contributionId, lineItem}`, 4xx a validation failure with
// details, and 5xx a downstream box-office failure.
func (c *Controller) SubmitOrder(ctx *gin.Context) {
	var req OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, OrderResponse{
			Success: false,
			Error:   "Invalid request body",
			Details: []string{err.Error()},
		})
		return
	}

	response, err := c.service.SubmitOrder(ctx.Request.Context(), req)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, OrderResponse{
				Success: false,
				Error:   "Order request failed validation",
				Details: validationErr.Details,
			})
			return
		}
		ctx.JSON(http.StatusBadGateway, OrderResponse{
			Success: false,
			Error:   "We couldn't add your commemorative tickets right now. Please try again.",
		})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
