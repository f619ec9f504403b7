// README: Base handler utilities (JSON helpers, input limits).
package handlers

import (
	"github.com/gin-gonic/gin"
)

// maxMessageLen bounds inbound chat messages; anything longer is rejected
// before it reaches the engine.
const maxMessageLen = 1000

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}
