package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every non-2xx response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success body as-is. Projections are already wire-shaped
// (snake_case tags on the DTOs), so there is no envelope.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(204)
}

// Error writes {"error": message} with the given status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// BadRequest writes {"error": message} with status 400. The handlers reach
// other statuses through Error with the classified code.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}
