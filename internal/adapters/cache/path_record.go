package cache

import (
	"encoding/json"
	"fmt"
	"shopping-path-service/internal/domain"
)

type locationRecord struct {
	Corridor string `json:"corridor"`
	Side     string `json:"side"`
	End      string `json:"end"`
	Category string `json:"category"`
	Distance int    `json:"distance"`
	Special  bool   `json:"special"`
}

type itemRecord struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Location locationRecord `json:"location"`
}

type corridorRecord struct {
	Name  string       `json:"name"`
	Entry string       `json:"entry"`
	Items []itemRecord `json:"items"`
}

// pathRecord is the cached wire form of an OptimizedPath.
type pathRecord struct {
	Corridors []corridorRecord `json:"corridors"`
	NotFound  []string         `json:"not_found"`
}

func encodePath(p *domain.OptimizedPath) ([]byte, error) {
	rec := pathRecord{
		Corridors: make([]corridorRecord, 0, len(p.Corridors)),
		NotFound:  p.NotFound,
	}

	for _, c := range p.Corridors {
		items := make([]itemRecord, 0, len(c.Items))
		for _, it := range c.Items {
			l := it.Location
			items = append(items, itemRecord{
				Name:     it.Name,
				Category: it.Category,
				Location: locationRecord{
					Corridor: l.Corridor,
					Side:     string(l.Side),
					End:      string(l.End),
					Category: l.Category,
					Distance: l.DistanceFromStart,
					Special:  l.Special,
				},
			})
		}
		rec.Corridors = append(rec.Corridors, corridorRecord{Name: c.Name, Entry: string(c.Entry), Items: items})
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode path: %w", err)
	}
	return b, nil
}

func decodePath(b []byte) (*domain.OptimizedPath, error) {
	var rec pathRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("decode path: %w", err)
	}

	p := &domain.OptimizedPath{
		Corridors: make([]domain.CorridorPath, 0, len(rec.Corridors)),
		NotFound:  rec.NotFound,
	}
	if p.NotFound == nil {
		p.NotFound = []string{}
	}

	for _, c := range rec.Corridors {
		entry := domain.End(c.Entry)
		if entry != domain.EndEast && entry != domain.EndWest {
			return nil, fmt.Errorf("decode path: corridor %q has invalid entry %q", c.Name, c.Entry)
		}

		items := make([]domain.ShoppingItem, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, domain.ShoppingItem{
				Name:     it.Name,
				Category: it.Category,
				Location: domain.Location{
					Corridor:          it.Location.Corridor,
					Side:              domain.Side(it.Location.Side),
					End:               domain.End(it.Location.End),
					Category:          it.Location.Category,
					DistanceFromStart: it.Location.Distance,
					Special:           it.Location.Special,
				},
			})
		}

		p.Corridors = append(p.Corridors, domain.CorridorPath{
			Name:  c.Name,
			Entry: entry,
			Exit:  entry.Opposite(),
			Items: items,
		})
	}

	return p, nil
}
