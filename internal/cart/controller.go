package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"keepsake/internal/shared/utils/response"
)

type Controller struct {
	store     *Store
	validator *validator.Validate
}

func NewController(store *Store) *Controller {
	return &Controller{
		store:     store,
		validator: validator.New(),
	}
}

// GetCart handles GET /api/v1/cart?sessionKey=...
//
// The success body is the fixed widget-facing shape:
// `{cart: {...}, addressOnFile}`.
func (c *Controller) GetCart(ctx *gin.Context) {
	sessionKey := ctx.Query("sessionKey")
	if sessionKey == "" {
		response.Error(ctx, http.StatusBadRequest, "sessionKey query parameter is required", nil)
		return
	}

	session, err := c.store.GetSession(ctx.Request.Context(), sessionKey)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.Error(ctx, http.StatusNotFound, "Cart session not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to load cart session", nil)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// SeedCart handles POST /api/v1/cart — demo tooling that plants a cart
// session for the shell page to mount against.
func (c *Controller) SeedCart(ctx *gin.Context) {
	var req SeedCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	seats := make([]Seat, 0, len(req.Seats))
	ticketTotal := 0.0
	for _, s := range req.Seats {
		seats = append(seats, Seat(s))
		ticketTotal += s.Price
	}

	session := Session{
		Cart: Cart{
			SessionKey:      req.SessionKey,
			ConstituentID:   req.ConstituentID,
			EventName:       req.EventName,
			PerformanceDate: req.PerformanceDate,
			Venue:           req.Venue,
			Seats:           seats,
			TicketTotal:     ticketTotal,
		},
		AddressOnFile: req.AddressOnFile,
	}

	if err := c.store.SaveSession(ctx.Request.Context(), session); err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to save cart session", err.Error())
		return
	}

	response.Success(ctx, http.StatusCreated, "Cart session created", session)
}
