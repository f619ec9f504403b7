// README: Chat handler; one message in, one composed reply out.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"activabot/internal/bot"
)

type ChatHandler struct {
	bot *bot.Service
}

func NewChatHandler(botSvc *bot.Service) *ChatHandler {
	return &ChatHandler{bot: botSvc}
}

type chatReq struct {
	Message string `json:"message"`
}

type chatResp struct {
	Reply string `json:"reply"`
}

// Chat handles POST /api/chat. The engine never fails a request; upstream
// trouble shows up as degraded reply text, so the only error statuses here
// are for bad input.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}
	if len(req.Message) > maxMessageLen {
		writeError(c, http.StatusBadRequest, "message too long")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	writeJSON(c, http.StatusOK, chatResp{Reply: h.bot.Respond(ctx, req.Message)})
}
