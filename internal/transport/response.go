package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/ds124wfegd/club-events/internal/validation"

	"github.com/gin-gonic/gin"
)

const maxFormMemory = 1 << 20

// formFromRequest reads an urlencoded or multipart body. Only the first
// value of a repeated key is kept.
func formFromRequest(c *gin.Context) (validation.Form, error) {
	err := c.Request.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}

	form := make(validation.Form, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			form[key] = values[0]
		}
	}
	return form, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrEventNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failed Result for err. fallback is shown for
// errors outside the taxonomy.
func respondError(c *gin.Context, err error, fallback string) {
	c.JSON(statusFor(err), entity.ResultFromError(err, fallback))
}

func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, entity.OK(data))
}
