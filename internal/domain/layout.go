package domain

// Products of one category, in layout order.
type CategoryProducts struct {
	Category string
	Products []string
}

// Categories placed near one corridor entrance.
type EndSection struct {
	End        End
	Categories []CategoryProducts
}

// One face of a sided corridor. EndSections hold products with an end
// affinity, FullWidth holds products spanning the whole corridor.
type SideSections struct {
	Side        Side
	EndSections []EndSection
	FullWidth   []CategoryProducts
}

// LayoutEntry is either a SpecialCorridor or a SidedCorridor.
type LayoutEntry interface {
	CorridorID() string
	products(profile StoreProfile) []ProductLocation
}

// The side corridor: categories only, no sides or ends.
type SpecialCorridor struct {
	ID         string
	Categories []CategoryProducts
}

func (c SpecialCorridor) CorridorID() string { return c.ID }

func (c SpecialCorridor) products(profile StoreProfile) []ProductLocation {
	var out []ProductLocation
	for _, cp := range c.Categories {
		for _, p := range cp.Products {
			out = append(out, ProductLocation{
				Product: p,
				Location: Location{
					Corridor:          c.ID,
					Category:          cp.Category,
					DistanceFromStart: profile.Distance(c.ID),
					Special:           true,
				},
			})
		}
	}
	return out
}

// A regular two-sided, two-ended corridor.
type SidedCorridor struct {
	ID    string
	Sides []SideSections
}

func (c SidedCorridor) CorridorID() string { return c.ID }

// End-affine products of a side come before its full-width products.
func (c SidedCorridor) products(profile StoreProfile) []ProductLocation {
	dist := profile.Distance(c.ID)

	var out []ProductLocation
	for _, s := range c.Sides {
		for _, es := range s.EndSections {
			for _, cp := range es.Categories {
				for _, p := range cp.Products {
					out = append(out, ProductLocation{
						Product: p,
						Location: Location{
							Corridor:          c.ID,
							Side:              s.Side,
							End:               es.End,
							Category:          cp.Category,
							DistanceFromStart: dist,
						},
					})
				}
			}
		}
		for _, cp := range s.FullWidth {
			for _, p := range cp.Products {
				out = append(out, ProductLocation{
					Product: p,
					Location: Location{
						Corridor:          c.ID,
						Side:              s.Side,
						Category:          cp.Category,
						DistanceFromStart: dist,
					},
				})
			}
		}
	}
	return out
}

// Store layout as delivered by the offline extraction pipeline.
// Entry order is the document order of the source artifact.
type Layout struct {
	Entries []LayoutEntry
}

// Flatten lists every product with its location, in layout order.
func (l *Layout) Flatten(profile StoreProfile) []ProductLocation {
	if l == nil {
		return nil
	}

	out := make([]ProductLocation, 0, 256)
	for _, e := range l.Entries {
		out = append(out, e.products(profile)...)
	}
	return out
}
