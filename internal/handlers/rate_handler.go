package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/veritalaw/consult-scheduler/internal/httperr"
	"github.com/veritalaw/consult-scheduler/internal/middleware"
	ucRate "github.com/veritalaw/consult-scheduler/internal/usecase/rate"
)

type RateHandler struct {
	setUC *ucRate.SetRate
}

func NewRateHandler(setUC *ucRate.SetRate) *RateHandler {
	return &RateHandler{setUC: setUC}
}

type SetRateRequest struct {
	RatePaise int64  `json:"rate_paise" binding:"required"`
	Currency  string `json:"currency"`
}

// Update appends a new rate version effective immediately. Admin only.
func (h *RateHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Rate is required.")
		return
	}

	if req.Currency == "" {
		req.Currency = "INR"
	}

	rate, err := h.setUC.Execute(
		c.Request.Context(),
		ucRate.SetRateInput{
			RatePaise: req.RatePaise,
			Currency:  req.Currency,
			ActorID:   userID,
		},
		time.Now(),
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_rate") || httperr.IsBusiness(err, "invalid_currency") {
			httperr.BadRequest(c, "invalid_rate", "Rate must be a positive amount with a 3-letter currency.")
			return
		}
		httperr.Internal(c, "failed_to_set_rate", "Failed to update rate.")
		return
	}

	c.JSON(http.StatusOK, rate)
}
