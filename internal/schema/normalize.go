package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"rentdocs/internal/template"
)

var acceptedDateLayouts = []string{template.DateLayout, time.RFC3339}

// normalize converts a raw JSON value into the typed value the renderer formats.
func normalize(f Field, raw any) (any, error) {
	switch f.Kind {
	case KindText:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string", f.Name)
		}
		s = strings.TrimSpace(s)
		if s == "" && f.Required {
			return nil, fmt.Errorf("%s must not be empty", f.Name)
		}
		return s, nil
	case KindAmount:
		v, err := parseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		return v, nil
	case KindDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a date string", f.Name)
		}
		d, err := parseDate(s)
		if err != nil {
			return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", f.Name)
		}
		return d, nil
	case KindCount:
		n, err := parseCount(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		return n, nil
	}
	return nil, fmt.Errorf("%s has unsupported kind %d", f.Name, f.Kind)
}

// parseAmount accepts a JSON number or a numeric string such as "15,000".
func parseAmount(raw any) (float64, error) {
	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case string:
		cleaned := strings.NewReplacer(",", "", " ", "").Replace(strings.TrimSpace(x))
		if cleaned == "" {
			return 0, errors.New("amount must not be empty")
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", x)
		}
		v = f
	default:
		return 0, errors.New("amount must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("amount must be finite")
	}
	if v < 0 {
		return 0, errors.New("amount must not be negative")
	}
	return v, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range acceptedDateLayouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseCount accepts a positive whole number as JSON number or digit string.
func parseCount(raw any) (int, error) {
	var n int
	switch x := raw.(type) {
	case float64:
		if x != math.Trunc(x) || x > math.MaxInt32 {
			return 0, errors.New("must be a whole number")
		}
		n = int(x)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, fmt.Errorf("%q is not a whole number", x)
		}
		n = i
	default:
		return 0, errors.New("must be a whole number")
	}
	if n <= 0 {
		return 0, errors.New("must be greater than zero")
	}
	return n, nil
}
