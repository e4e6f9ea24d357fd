// Newsletter HTTP handler.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-store/go-store-backend/internal/services"
)

// SubscribeRequest is the JSON payload for a newsletter signup.
type SubscribeRequest struct {
	Email string `json:"email" example:"meera@example.com"`
}

// SubscribeResponse reports a recorded signup and its discount code.
type SubscribeResponse struct {
	Success      bool   `json:"success"`
	DiscountCode string `json:"discount_code"`
}

// Subscribe godoc
// @ID          subscribe
// @Summary     Join the newsletter
// @Description Records the email once and returns a personalized discount code.
// @Tags        Newsletter
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubscribeRequest  true  "Signup payload"
//
// @Success     200  {object}  handlers.SubscribeResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid email address"
// @Failure     409  {object}  handlers.ErrorResponse  "Email already subscribed"
// @Router      /subscribe [post]
func (h *Handlers) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	code, err := h.newsSvc.Subscribe(c.Request.Context(), req.Email)
	switch {
	case errors.Is(err, services.ErrInvalidEmail):
		fail(c, http.StatusBadRequest, ErrCodeInvalidEmail, "Invalid email address")
		return
	case errors.Is(err, services.ErrAlreadySubscribed):
		fail(c, http.StatusConflict, ErrCodeConflict, "Email already subscribed")
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, SubscribeResponse{Success: true, DiscountCode: code})
}
