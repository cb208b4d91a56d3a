package components

// Kind identifies what an entity is. It selects render size and color.
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
	KindLaser
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindAsteroid:
		return "asteroid"
	case KindLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// Body marks every rendered entity with its kind.
type Body struct {
	Kind Kind `inspect:"label"`
}
