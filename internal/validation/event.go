package validation

import (
	"encoding/json"
	"strings"

	"github.com/ds124wfegd/club-events/internal/entity"
)

const InvalidEventMessage = "Invalid event data"

var eventMessages = map[string]string{
	"title.min":                "Event name is required",
	"description.min":          "Brief info is required",
	"eventDate.timestamp":      "Invalid date format",
	"coordinators.min":         "At least one coordinator is required",
	"coordinators.max":         "Maximum 3 coordinators allowed",
	"coordinators.name.min":    "Coordinator name is required",
	"coordinators.phone.min":   "Phone must be at least 10 digits",
	"coordinators.phone.phone": "Invalid phone number",
	"whatsappLink.url":         "Valid WhatsApp group link required",
	"minTeamSize.min":          "Min team size must be at least 1",
	"minTeamSize.max":          "Min team size too large",
	"maxTeamSize.min":          "Max team size must be at least 1",
	"maxTeamSize.max":          "Max team size too large",
	"maxTeamSize.teamconfig":   "Invalid team configuration",
}

// ParseEvent coerces an admin event form and validates it. The form carries
// coordinators as a JSON array and isTeamBased as a checkbox value. Team
// sizes default to 2 for team events and 1 otherwise when left out.
func (v *Validator) ParseEvent(form Form) (*entity.EventInput, error) {
	var coerced []entity.FieldError

	in := &entity.EventInput{
		Title:        form.Get("title"),
		Description:  form.Get("description"),
		EventDate:    form.Get("eventDate"),
		WhatsappLink: form.Get("whatsappLink"),
		IsTeamBased:  isChecked(form.Get("isTeamBased")),
	}

	rawCoordinators := strings.TrimSpace(form.Get("coordinators"))
	if rawCoordinators == "" {
		rawCoordinators = "[]"
	}
	if err := json.Unmarshal([]byte(rawCoordinators), &in.Coordinators); err != nil {
		coerced = append(coerced, entity.FieldError{Field: "coordinators", Message: "Coordinators must be a list of name and phone pairs"})
	}

	defaultSize := 1
	if in.IsTeamBased {
		defaultSize = 2
	}
	var fe *entity.FieldError
	if in.MinTeamSize, fe = teamSize(form, "minTeamSize", "Min team size", defaultSize); fe != nil {
		coerced = append(coerced, *fe)
	}
	if in.MaxTeamSize, fe = teamSize(form, "maxTeamSize", "Max team size", defaultSize); fe != nil {
		coerced = append(coerced, *fe)
	}

	fields := mergeFields(coerced, v.check(in, eventMessages, ""))
	if len(fields) > 0 {
		return nil, entity.NewValidationError(InvalidEventMessage, fields...)
	}

	in.ParsedDate, _ = ParseTimestamp(in.EventDate)
	return in, nil
}

func teamSize(form Form, key, label string, def int) (int, *entity.FieldError) {
	raw, ok := form.Lookup(key)
	if !ok {
		return def, nil
	}
	n, numErr := parseInteger(raw)
	switch numErr {
	case notANumber:
		return 0, &entity.FieldError{Field: key, Message: label + " must be a number"}
	case notAnInteger:
		return 0, &entity.FieldError{Field: key, Message: label + " must be an integer"}
	}
	return n, nil
}
