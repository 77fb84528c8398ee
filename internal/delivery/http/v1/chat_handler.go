package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// NewChatHandler registers the chat proxy routes (public, no auth required)
func NewChatHandler(public *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{
		chatUC: chatUC,
	}

	public.POST("/chat", handler.SendMessage)
}

// SendMessage godoc
// @Summary      Chat With The Portfolio Bot
// @Description  Forward a message to the generative-language API and return the reply.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat  body      domain.ChatRequest  true  "Chat Message"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /chat [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reply, err := h.chatUC.Reply(c.Request.Context(), req.Message)
	if err != nil {
		if err.Error() == "chat service is not configured" {
			c.Error(apperror.New(http.StatusServiceUnavailable, "Chat temporarily unavailable", err))
			return
		}
		c.Error(apperror.New(http.StatusBadGateway, "Failed to fetch response. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "OK", gin.H{"reply": reply})
}
