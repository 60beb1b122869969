// Package parser turns user-supplied date expressions into the calendar
// date strings the aggregation engine keys on.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/cronozapp/cronoz/internal/errors"
	"github.com/cronozapp/cronoz/internal/model"
)

// ParseDate parses an exact or natural-language date expression into a
// YYYY-MM-DD string, relative to now. Empty input and "today" resolve to
// now's calendar date.
func ParseDate(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "", "today":
		return now.Format(model.DateLayout), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(model.DateLayout), nil
	}

	// Exact form short-circuits the natural language parser.
	if t, err := time.Parse(model.DateLayout, input); err == nil {
		return t.Format(model.DateLayout), nil
	}

	cfg := &dateparser.Configuration{CurrentTime: now}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", errors.NewUserErrorWithField("date", input,
			"Could not understand date",
			"Use YYYY-MM-DD or natural language like 'yesterday' or 'last monday'")
	}
	return result.Time.Format(model.DateLayout), nil
}
