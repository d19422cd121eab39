// Package validation turns raw form submissions into validated entities.
//
// Rules live in `validate` struct tags on the entity input types and are run
// by one shared go-playground validator. Every failure is reported as an
// *entity.ValidationError carrying one FieldError per violated field, with
// the message the form shows next to that field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/ds124wfegd/club-events/internal/entity"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern      = regexp.MustCompile(`^[+]?[- 0-9()]*$`)
	merchPhonePattern = regexp.MustCompile(`^[+]*[(]{0,1}[0-9]{1,4}[)]{0,1}[-\s\./0-9]*$`)
	regNoPattern      = regexp.MustCompile(`^[1-9][0-9][A-Z]{3}[0-9]{4}$`)
	indexPattern      = regexp.MustCompile(`\[\d+\]`)
)

// Accepted eventDate layouts. Layouts without a zone are read in local time,
// which is what a datetime-local input submits.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Validator holds the configured rule set. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "merchphone", func(fl validator.FieldLevel) bool {
		return merchPhonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "regno", func(fl validator.FieldLevel) bool {
		return regNoPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "timestamp", func(fl validator.FieldLevel) bool {
		_, err := ParseTimestamp(fl.Field().String())
		return err == nil
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		in, ok := sl.Current().Interface().(entity.EventInput)
		if ok && !in.ValidTeamConfig() {
			sl.ReportError(in.MaxTeamSize, "maxTeamSize", "MaxTeamSize", "teamconfig", "")
		}
	}, entity.EventInput{})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// ParseTimestamp parses an event date in any accepted layout.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// check runs the struct rules and translates failures through messages,
// which is keyed by "<field path without indexes>.<tag>". prefix is put in
// front of every reported field path.
func (v *Validator) check(s interface{}, messages map[string]string, prefix string) []entity.FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []entity.FieldError{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	fields := make([]entity.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		path := fe.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		key := indexPattern.ReplaceAllString(path, "") + "." + fe.Tag()

		message, ok := messages[key]
		if !ok {
			message = fmt.Sprintf("%s failed the %q rule", fe.Field(), fe.Tag())
		}
		fields = append(fields, entity.FieldError{Field: prefix + path, Message: message})
	}
	return mergeFields(nil, fields)
}

// mergeFields appends rule failures to coercion failures. Only the first
// failure per field is kept.
func mergeFields(coerced, checked []entity.FieldError) []entity.FieldError {
	seen := make(map[string]bool, len(coerced)+len(checked))
	out := make([]entity.FieldError, 0, len(coerced)+len(checked))
	for _, f := range append(coerced, checked...) {
		if seen[f.Field] {
			continue
		}
		seen[f.Field] = true
		out = append(out, f)
	}
	return out
}
