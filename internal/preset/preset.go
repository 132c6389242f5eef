// Package preset reads saved filter selections from YAML files.
//
//	countries: [USA, Spain]
//	categories: [Health]
//	from: 2025-02-01
//	to: 2025-05-31
//
// Omitted lists select every value; an explicit empty list selects none.
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"fundboard/internal/core/domain"
)

type file struct {
	Countries  *[]string `yaml:"countries"`
	Categories *[]string `yaml:"categories"`
	From       string    `yaml:"from"`
	To         string    `yaml:"to"`
}

// Load reads a preset from path.
func Load(path string) (domain.FilterSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.FilterSpec{}, fmt.Errorf("open preset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a preset. Unknown countries or categories are errors.
func Decode(r io.Reader) (domain.FilterSpec, error) {
	var raw file
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return domain.FilterSpec{}, fmt.Errorf("decode preset: %w", err)
	}

	spec := domain.FilterSpec{
		Countries:  append([]domain.Country(nil), domain.Countries...),
		Categories: append([]domain.Category(nil), domain.Categories...),
	}
	if raw.Countries != nil {
		spec.Countries = []domain.Country{}
		for _, c := range *raw.Countries {
			if !domain.IsCountry(c) {
				return spec, fmt.Errorf("preset: unknown country %q", c)
			}
			spec.Countries = append(spec.Countries, domain.Country(c))
		}
	}
	if raw.Categories != nil {
		spec.Categories = []domain.Category{}
		for _, c := range *raw.Categories {
			if !domain.IsCategory(c) {
				return spec, fmt.Errorf("preset: unknown category %q", c)
			}
			spec.Categories = append(spec.Categories, domain.Category(c))
		}
	}

	var err error
	if spec.From, err = parseDate(raw.From); err != nil {
		return spec, fmt.Errorf("preset from: %w", err)
	}
	if spec.To, err = parseDate(raw.To); err != nil {
		return spec, fmt.Errorf("preset to: %w", err)
	}
	return spec, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(domain.DateLayout, s)
}
