package httpadapter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"fundboard/internal/core/domain"
)

// parseFilter builds a FilterSpec from query parameters.
//
// `country` and `category` may repeat or hold comma separated values. An
// absent parameter selects every value; a present but empty one
// (`?country=`) selects none. `from` and `to` are YYYY-MM-DD dates; absent
// bounds default to the dataset window. Unknown enum values are left for the
// use case to reject.
func parseFilter(q url.Values) (domain.FilterSpec, error) {
	var spec domain.FilterSpec

	if values, ok := q["country"]; ok {
		spec.Countries = []domain.Country{}
		for _, v := range splitValues(values) {
			spec.Countries = append(spec.Countries, domain.Country(v))
		}
	} else {
		spec.Countries = append([]domain.Country(nil), domain.Countries...)
	}

	if values, ok := q["category"]; ok {
		spec.Categories = []domain.Category{}
		for _, v := range splitValues(values) {
			spec.Categories = append(spec.Categories, domain.Category(v))
		}
	} else {
		spec.Categories = append([]domain.Category(nil), domain.Categories...)
	}

	var err error
	if spec.From, err = parseDate(q.Get("from")); err != nil {
		return spec, fmt.Errorf("invalid 'from' date: %w", err)
	}
	if spec.To, err = parseDate(q.Get("to")); err != nil {
		return spec, fmt.Errorf("invalid 'to' date: %w", err)
	}
	return spec, nil
}

func splitValues(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateLayout, s)
}
