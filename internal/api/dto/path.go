package dto

import "shopping-path-service/internal/domain"

type PathRequest struct {
	Items []string `json:"items"`
}

type LocationResponse struct {
	Corridor  string `json:"corridor"`
	Direction string `json:"direction"`
	Position  string `json:"position"`
	Side      string `json:"side"`
}

type ItemResponse struct {
	Name     string           `json:"name"`
	Category string           `json:"category"`
	Location LocationResponse `json:"location"`
}

type CorridorResponse struct {
	Name       string         `json:"name"`
	EntryPoint string         `json:"entry_point"`
	ExitPoint  string         `json:"exit_point"`
	Items      []ItemResponse `json:"items"`
}

type PathResponse struct {
	Corridors     []CorridorResponse `json:"corridors"`
	NotFoundItems []string           `json:"not_found_items"`
}

// FromLocation renders a location. Side is "Right" only for the reference
// side marker; everything else, including the side corridor, is "Left".
func FromLocation(l domain.Location) LocationResponse {
	side := "Left"
	if l.Side == domain.SideNorth {
		side = "Right"
	}

	return LocationResponse{
		Corridor:  l.Corridor,
		Direction: string(l.Side),
		Position:  string(l.End),
		Side:      side,
	}
}

// FromPath renders an optimized path into its structured record.
func FromPath(p *domain.OptimizedPath) PathResponse {
	res := PathResponse{
		Corridors:     make([]CorridorResponse, 0, len(p.Corridors)),
		NotFoundItems: make([]string, 0, len(p.NotFound)),
	}
	res.NotFoundItems = append(res.NotFoundItems, p.NotFound...)

	for _, c := range p.Corridors {
		items := make([]ItemResponse, 0, len(c.Items))
		for _, it := range c.Items {
			items = append(items, ItemResponse{
				Name:     it.Name,
				Category: it.Category,
				Location: FromLocation(it.Location),
			})
		}

		res.Corridors = append(res.Corridors, CorridorResponse{
			Name:       c.Name,
			EntryPoint: c.Entry.Label(),
			ExitPoint:  c.Exit.Label(),
			Items:      items,
		})
	}

	return res
}
