package domain

// Side is one of the two opposing faces of a corridor.
type Side string

// End is one of the two entrances of a corridor.
type End string

const (
	// SideNorth is the reference side. Walking in from the east it is on the right.
	SideNorth Side = "N"
	SideSouth Side = "S"

	// EndEast is the reference end, the one nearer the store entrance.
	EndEast End = "E"
	EndWest End = "W"
)

// Opposite returns the other entrance of a two-ended corridor.
func (e End) Opposite() End {
	if e == EndEast {
		return EndWest
	}
	return EndEast
}

// Label returns the human readable entrance name used in rendered paths.
func (e End) Label() string {
	if e == EndEast {
		return "East"
	}
	return "West"
}

// Immutable descriptor of where a product sits in the store.
// Side and End are empty for the special side corridor; End alone is empty
// for products spanning the whole corridor width.
type Location struct {
	Corridor          string
	Side              Side
	End               End
	Category          string
	DistanceFromStart int
	Special           bool
}

// Describe returns the walker-facing side description of the location.
func (l Location) Describe() string {
	if l.Special {
		return "Side corridor"
	}
	if l.Side == SideNorth {
		return "Right side"
	}
	return "Left side"
}

// Product name paired with its location, as stored in the layout.
type ProductLocation struct {
	Product  string
	Location Location
}

// A requested name with its resolved location.
type ShoppingItem struct {
	Name     string
	Location Location
	Category string
}

// One planned stop: a corridor walked from Entry to Exit.
type CorridorPath struct {
	Name  string
	Entry End
	Exit  End
	Items []ShoppingItem
}

// Direction renders the walking direction, e.g. "East → West".
func (c CorridorPath) Direction() string {
	return c.Entry.Label() + " → " + c.Exit.Label()
}

// Represents the planned walk for a single shopping list.
// It is immutable planning data produced once per optimization.
type OptimizedPath struct {
	Corridors []CorridorPath
	NotFound  []string
}
