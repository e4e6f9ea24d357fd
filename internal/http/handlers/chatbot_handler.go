// Chatbot HTTP handlers.
//
//   - POST /chatbot/ask  (answer a question, possibly filing a ticket)
//   - GET  /faqs         (public question/category listing)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lunara-store/go-store-backend/internal/services"
)

// AskRequest is the JSON payload for a chatbot question. Name and email are
// optional; for logged-in visitors the account identity fills any blanks.
type AskRequest struct {
	Message string `json:"message" example:"Do you ship internationally?"`
	Name    string `json:"name,omitempty" example:"Meera"`
	Email   string `json:"email,omitempty" example:"meera@example.com"`
}

// AskResponse is the chatbot reply envelope.
type AskResponse struct {
	Success   bool   `json:"success"`
	Reply     string `json:"reply"`
	Matched   bool   `json:"matched"`
	TicketID  *int   `json:"ticket_id,omitempty"`
	Sentiment string `json:"sentiment,omitempty"`
}

// FAQListResponse wraps the public FAQ listing.
type FAQListResponse struct {
	FAQs []services.FAQListItem `json:"faqs"`
}

// Ask godoc
// @ID          chatbotAsk
// @Summary     Ask the storefront chatbot a question
// @Description Answers from the FAQ knowledge base; unanswered or negative messages open a support ticket.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.AskRequest  true  "Question payload"
//
// @Success     200  {object}  handlers.AskResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chatbot/ask [post]
func (h *Handlers) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	name, email := req.Name, req.Email
	if uid := userID(c); uid != "" && (name == "" || email == "") {
		if u, err := h.authSvc.CurrentUser(c.Request.Context(), uid); err == nil {
			if name == "" {
				name = u.Name
			}
			if email == "" {
				email = u.Email
			}
		}
	}

	reply, err := h.chatSvc.Ask(c.Request.Context(), req.Message, name, email)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeAskFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, AskResponse{
		Success:   reply.Success,
		Reply:     reply.Reply,
		Matched:   reply.Matched,
		TicketID:  reply.TicketID,
		Sentiment: string(reply.Sentiment),
	})
}

// ListFAQs godoc
// @ID          listFAQs
// @Summary     List FAQ questions
// @Description Returns up to 12 question/category pairs for the storefront widget.
// @Tags        Chatbot
// @Produce     json
//
// @Success     200  {object}  handlers.FAQListResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /faqs [get]
func (h *Handlers) ListFAQs(c *gin.Context) {
	items, err := h.catSvc.FAQs(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, FAQListResponse{FAQs: items})
}
