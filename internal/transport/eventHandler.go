package transport

import (
	"net/http"
	"time"

	"github.com/ds124wfegd/club-events/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	loadEventsFailedMessage = "Failed to load events"
	loadEventFailedMessage  = "Failed to load event"
)

type EventHandler struct {
	eventService service.EventService
	now          service.Clock
}

func NewEventHandler(eventService service.EventService, now service.Clock) *EventHandler {
	if now == nil {
		now = time.Now
	}
	return &EventHandler{eventService: eventService, now: now}
}

func (h *EventHandler) GetLiveEvents(c *gin.Context) {
	events, err := h.eventService.ListLiveEvents(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, err, loadEventsFailedMessage)
		return
	}

	respondOK(c, http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, loadEventFailedMessage)
		return
	}

	respondOK(c, http.StatusOK, event)
}

// GetRegistrationSuccess returns what the page after a registration shows:
// the event title and its group link.
func (h *EventHandler) GetRegistrationSuccess(c *gin.Context) {
	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, loadEventFailedMessage)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"title":        event.Title,
		"whatsappLink": event.WhatsappLink,
	})
}

func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err, loadEventsFailedMessage)
		return
	}

	respondOK(c, http.StatusOK, events)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	form, err := formFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid event data"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	respondOK(c, http.StatusCreated, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete event")
		return
	}

	respondOK(c, http.StatusOK, nil)
}
