package transport

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/internal/service"
	"github.com/ds124wfegd/club-events/internal/transport/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const adminHomePath = "/admin/events"

type AdminHandler struct {
	authService        service.AuthService
	participantService service.ParticipantService
	secureCookie       bool
}

func NewAdminHandler(
	authService service.AuthService,
	participantService service.ParticipantService,
	secureCookie bool,
) *AdminHandler {
	return &AdminHandler{
		authService:        authService,
		participantService: participantService,
		secureCookie:       secureCookie,
	}
}

// GetLogin describes the login view. error carries the message of a failed
// attempt back from the redirect.
func (h *AdminHandler) GetLogin(c *gin.Context) {
	token, _ := c.Cookie(service.AdminCookieName)

	c.JSON(http.StatusOK, gin.H{
		"view":          "login",
		"error":         c.Query("error"),
		"authenticated": h.authService.Authorize(token) == service.Authorized,
	})
}

func (h *AdminHandler) Login(c *gin.Context) {
	token, err := h.authService.Login(c.PostForm("password"))
	if errors.Is(err, entity.ErrInvalidPassword) {
		logrus.WithField("client_ip", c.ClientIP()).Warn("Admin login failed")
		c.Redirect(http.StatusSeeOther, middleware.LoginPath+"?error="+url.PathEscape("Invalid password"))
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to issue admin session")
		c.JSON(http.StatusInternalServerError, entity.Result{Error: "An unexpected error occurred."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(service.AdminCookieName, token, int(h.authService.SessionTTL().Seconds()), "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, adminHomePath)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(service.AdminCookieName, "", -1, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (h *AdminHandler) GetParticipants(c *gin.Context) {
	rows, err := h.participantService.ListParticipants(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load participants")
		return
	}

	respondOK(c, http.StatusOK, rows)
}

func (h *AdminHandler) ExportParticipants(c *gin.Context) {
	export, err := h.participantService.ExportCSV(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to export participants")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Data)
}
