package middleware

import (
	"net/http"

	"github.com/ds124wfegd/club-events/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const LoginPath = "/admin/login"

// AdminAuth lets a request through only with a valid admin session cookie.
// Anything else is sent to the login view.
func AdminAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(service.AdminCookieName)

		if result := auth.Authorize(token); result != service.Authorized {
			logrus.WithFields(logrus.Fields{
				"path":   c.Request.URL.Path,
				"result": result.String(),
			}).Debug("Admin request not authorized")

			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
