package services

import (
	"shopping-path-service/internal/domain"
	"testing"
)

func loc(corridor string, side domain.Side, end domain.End, category string) domain.Location {
	profile := domain.DefaultStoreProfile()
	return domain.Location{
		Corridor:          corridor,
		Side:              side,
		End:               end,
		Category:          category,
		DistanceFromStart: profile.Distance(corridor),
		Special:           profile.IsSpecial(corridor),
	}
}

// storeEntries is a small store: the side corridor plus three regular corridors.
func storeEntries() []domain.ProductLocation {
	return []domain.ProductLocation{
		{Product: "Milch", Location: loc("Gang 1", domain.SideNorth, domain.EndEast, "Milchprodukte")},
		{Product: "Butter", Location: loc("Gang 1", domain.SideNorth, domain.EndEast, "Milchprodukte")},
		{Product: "Joghurt", Location: loc("Gang 1", domain.SideSouth, domain.EndEast, "Joghurt")},
		{Product: "Käse", Location: loc("Gang 1", domain.SideSouth, "", "Käse")},
		{Product: "Kerzen", Location: loc("Seiten M", "", "", "Haushalt")},
		{Product: "Servietten", Location: loc("Seiten M", "", "", "Haushalt")},
		{Product: "Spaghetti", Location: loc("Gang 3", domain.SideNorth, domain.EndWest, "Nudeln")},
		{Product: "Penne", Location: loc("Gang 3", domain.SideSouth, domain.EndWest, "Nudeln")},
		{Product: "Reis", Location: loc("Gang 3", domain.SideSouth, domain.EndWest, "Reis")},
		{Product: "Tomatensauce", Location: loc("Gang 3", domain.SideNorth, domain.EndEast, "Saucen")},
		{Product: "Kaffee", Location: loc("Gang 2", domain.SideNorth, "", "Kaffee")},
		{Product: "Tee", Location: loc("Gang 2", domain.SideSouth, "", "Tee")},
	}
}

func newTestOptimizer(t *testing.T) *Optimizer {
	t.Helper()

	opt, err := NewOptimizer(storeEntries(), domain.DefaultStoreProfile())
	if err != nil {
		t.Fatalf("new optimizer: %v", err)
	}
	return opt
}

func corridorNames(p *domain.OptimizedPath) []string {
	names := make([]string, 0, len(p.Corridors))
	for _, c := range p.Corridors {
		names = append(names, c.Name)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
