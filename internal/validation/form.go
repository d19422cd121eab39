package validation

import (
	"math"
	"strconv"
	"strings"
)

// Form is a flat submission: field name to value, as posted by an HTML form.
type Form map[string]string

func (f Form) Get(key string) string {
	return f[key]
}

func (f Form) Lookup(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// With returns a copy of the form with key set to value.
func (f Form) With(key, value string) Form {
	out := make(Form, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	out[key] = value
	return out
}

// isChecked reads a checkbox-style boolean.
func isChecked(v string) bool {
	return v == "true" || v == "on"
}

type numberError int

const (
	notANumber numberError = iota + 1
	notAnInteger
)

// parseInteger reads a numeric form value. A blank value reads as 0.
func parseInteger(raw string) (int, numberError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, notANumber
	}
	if f != math.Trunc(f) {
		return 0, notAnInteger
	}
	// out of range values still fail the range rules
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return int(f), 0
}
