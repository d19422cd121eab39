package transport

import (
	"net/http"

	"github.com/ds124wfegd/club-events/internal/service"
	"github.com/ds124wfegd/club-events/internal/validation"

	"github.com/gin-gonic/gin"
)

type MerchHandler struct {
	merchService service.MerchService
}

func NewMerchHandler(merchService service.MerchService) *MerchHandler {
	return &MerchHandler{merchService: merchService}
}

func (h *MerchHandler) PlaceOrder(c *gin.Context) {
	form, err := formFromRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.InvalidOrderMessage})
		return
	}

	order, err := h.merchService.PlaceOrder(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, "An unexpected error occurred.")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"orderId": order.ID.Hex(),
		"amount":  order.Amount,
	})
}

func (h *MerchHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.merchService.Catalog())
}

func (h *MerchHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.merchService.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load orders")
		return
	}

	respondOK(c, http.StatusOK, orders)
}
