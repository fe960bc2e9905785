package validate

import (
	"sort"
	"strings"
)

// FieldErrors maps field names to human-readable reasons. It implements error
// so services can return it and handlers can surface it as validation detail.
type FieldErrors map[string]string

// Add records a reason for a field, keeping the first reason on repeats.
func (fe FieldErrors) Add(field, reason string) {
	if _, ok := fe[field]; !ok {
		fe[field] = reason
	}
}

// OrNil returns the collected errors, or nil if none were recorded.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

// Required adds a "required" reason when the trimmed value is empty and
// returns the trimmed value either way.
func (fe FieldErrors) Required(field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		fe.Add(field, "is required")
	}
	return trimmed
}
