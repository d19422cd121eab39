package validation

import (
	"github.com/ds124wfegd/club-events/internal/entity"
)

const InvalidOrderMessage = "Invalid data provided."

var merchMessages = map[string]string{
	"name.min":           "Name must be at least 2 characters.",
	"regNo.regno":        "Invalid registration number format (e.g., 24BYB1234).",
	"email.email":        "Invalid email address.",
	"phone.min":          "Phone number must be at least 10 digits.",
	"phone.merchphone":   "Invalid phone number format.",
	"department.oneof":   "Please select your department.",
	"tshirtDesign.oneof": "Please select a t-shirt design.",
	"size.oneof":         "Please select a size.",
}

// IsMember reads the membership flag the order form posts as "true"/"false".
func IsMember(form Form) bool {
	return form.Get("isMember") == "true"
}

// ParseMerchOrder validates a merch order form. Membership is not checked
// against the chosen design here.
func (v *Validator) ParseMerchOrder(form Form) (*entity.MerchOrderInput, error) {
	in := &entity.MerchOrderInput{
		IsMember:     IsMember(form),
		Name:         form.Get("name"),
		RegNo:        form.Get("regNo"),
		Email:        form.Get("email"),
		Phone:        form.Get("phone"),
		Department:   form.Get("department"),
		TshirtDesign: form.Get("tshirtDesign"),
		Size:         form.Get("size"),
	}
	if fields := v.check(in, merchMessages, ""); len(fields) > 0 {
		return nil, entity.NewValidationError(InvalidOrderMessage, fields...)
	}
	return in, nil
}
