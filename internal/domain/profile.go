package domain

// DefaultSpecialCorridor is the side corridor of the reference store.
const DefaultSpecialCorridor = "Seiten M"

// Static description of a store: which corridor is the side corridor and
// how far each corridor is from the entrance. Distances only order corridors.
type StoreProfile struct {
	SpecialCorridor string
	Distances       map[string]int
}

// DefaultStoreProfile returns the corridor table of the reference store.
func DefaultStoreProfile() StoreProfile {
	return StoreProfile{
		SpecialCorridor: DefaultSpecialCorridor,
		Distances: map[string]int{
			"Seiten M": 1,
			"Gang 1":   2,
			"Gang 2":   3,
			"Gang 3":   4,
			"Gang 4":   5,
			"Gang 5":   6,
			"Gang 6":   7,
		},
	}
}

// Distance returns the corridor's distance from the start, 0 if unknown.
func (p StoreProfile) Distance(corridor string) int {
	return p.Distances[corridor]
}

// IsSpecial reports whether corridor is the side corridor.
func (p StoreProfile) IsSpecial(corridor string) bool {
	return corridor == p.SpecialCorridor
}
