// Package handlers contains one HTTP handler constructor per endpoint.
// Every handler declares the narrow service and token interfaces it needs.
package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const dateLayout = "2006-01-02"

// parseDate parses a request date in YYYY-MM-DD form; an empty string
// means today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	return time.Parse(dateLayout, s)
}
