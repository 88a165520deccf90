package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"shopping-path-service/internal/domain"
)

// ErrMalformedLayout wraps every shape violation found while parsing a layout.
var ErrMalformedLayout = errors.New("malformed layout")

const (
	positionsKey  = "positions"
	categoriesKey = "categories"
)

// ParseLayout decodes the merged store layout artifact.
//
// Object keys are read as a token stream so the document order survives:
// it becomes the enumeration order of the location index.
func ParseLayout(r io.Reader, specialCorridor string) (*domain.Layout, error) {
	dec := json.NewDecoder(r)
	layout := &domain.Layout{}

	err := decodeObject(dec, func(corridor string) error {
		if corridor == specialCorridor {
			cats, err := decodeCategories(dec)
			if err != nil {
				return fmt.Errorf("corridor %q: %w", corridor, err)
			}
			layout.Entries = append(layout.Entries, domain.SpecialCorridor{ID: corridor, Categories: cats})
			return nil
		}

		sided := domain.SidedCorridor{ID: corridor}
		err := decodeObject(dec, func(side string) error {
			s := domain.Side(side)
			if s != domain.SideNorth && s != domain.SideSouth {
				return fmt.Errorf("corridor %q: unknown side %q", corridor, side)
			}

			sections, err := decodeSide(dec, s)
			if err != nil {
				return fmt.Errorf("corridor %q side %s: %w", corridor, side, err)
			}
			sided.Sides = append(sided.Sides, sections)
			return nil
		})
		if err != nil {
			return err
		}

		layout.Entries = append(layout.Entries, sided)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w: %w", ErrMalformedLayout, err)
	}

	// Trailing garbage after the top-level object is a broken artifact.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parse layout: %w: trailing data after layout object", ErrMalformedLayout)
	}

	return layout, nil
}

func decodeSide(dec *json.Decoder, side domain.Side) (domain.SideSections, error) {
	sections := domain.SideSections{Side: side}

	err := decodeObject(dec, func(key string) error {
		switch key {
		case positionsKey:
			return decodeObject(dec, func(end string) error {
				e := domain.End(end)
				if e != domain.EndEast && e != domain.EndWest {
					return fmt.Errorf("unknown end %q", end)
				}

				cats, err := decodeCategories(dec)
				if err != nil {
					return fmt.Errorf("end %s: %w", end, err)
				}
				sections.EndSections = append(sections.EndSections, domain.EndSection{End: e, Categories: cats})
				return nil
			})
		case categoriesKey:
			cats, err := decodeCategories(dec)
			if err != nil {
				return fmt.Errorf("%s: %w", categoriesKey, err)
			}
			sections.FullWidth = append(sections.FullWidth, cats...)
			return nil
		default:
			var skip json.RawMessage
			return dec.Decode(&skip)
		}
	})

	return sections, err
}

func decodeCategories(dec *json.Decoder) ([]domain.CategoryProducts, error) {
	var out []domain.CategoryProducts

	err := decodeObject(dec, func(category string) error {
		var products []string
		if err := dec.Decode(&products); err != nil {
			return fmt.Errorf("category %q: products must be a list of strings: %w", category, err)
		}
		out = append(out, domain.CategoryProducts{Category: category, Products: products})
		return nil
	})

	return out, err
}

// decodeObject walks one JSON object, calling value for each key. The
// callback must consume exactly the value that follows the key.
func decodeObject(dec *json.Decoder, value func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read object start: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := value(key); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read object end: %w", err)
	}
	return nil
}
