package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
	public.GET("/contact", handler.ContactInfo)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	res := h.contactUC.Dispatch(c.Request.Context(), &req)
	if !res.Success {
		c.Error(apperror.Dispatch(statusForCategory(res.Category), string(res.Category), res.Error, res.Detail))
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", gin.H{
		"message_id": res.MessageID,
	})
}

// ContactInfo godoc
// @Summary      Contact Endpoint Info
// @Description  Usage hint for the contact endpoint.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /contact [get]
func (h *ContactHandler) ContactInfo(c *gin.Context) {
	response.Success(c, http.StatusOK, "Contact form endpoint is working. Use POST to send messages.", nil)
}

// statusForCategory maps dispatch failure categories to HTTP status codes.
// transport-unavailable is 503 so load balancers and uptime checks see the
// relay outage; credential and network failures during send are 502.
func statusForCategory(category domain.ErrorCategory) int {
	switch category {
	case domain.CategoryInvalidInput:
		return http.StatusBadRequest
	case domain.CategoryTransportUnavailable:
		return http.StatusServiceUnavailable
	case domain.CategoryAuthFailure, domain.CategoryConnectionFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
