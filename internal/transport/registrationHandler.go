package transport

import (
	"net/http"

	"github.com/ds124wfegd/club-events/internal/service"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	registrationService service.RegistrationService
}

func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	form, err := formFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid data"})
		return
	}

	participant, err := h.registrationService.Register(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"id":         participant.ID,
		"successUrl": "/api/v1/events/" + participant.EventID + "/success",
	})
}
