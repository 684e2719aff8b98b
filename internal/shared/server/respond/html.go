package respond

import "github.com/gin-gonic/gin"

// HTML writes an HTML document with the given status.
func HTML(c *gin.Context, status int, body string) {
	c.Data(status, "text/html; charset=utf-8", []byte(body))
}

// Text writes a plain text response with the given status.
func Text(c *gin.Context, status int, body string) {
	c.Data(status, "text/plain; charset=utf-8", []byte(body))
}
