package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"everafterpress.ca/stationery/api/pkg/global"
)

// RequireUserID guards the quote-listing route: quotes are owned by the
// user who saved them, so a listing without an owner is meaningless.
func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Request.URL.Query().Get("userId")
		if userID == "" {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("userId query parameter required", []global.ValidationError{
				{Field: "userId", Message: "userId query parameter is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
