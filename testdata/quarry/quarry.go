package quarry

type Mover interface {
	Move() string
}

// Rock has a Move method with the wrong result type.
type Rock struct{}

func (Rock) Move() int { return 0 }

// Stone has a pointer Move method with an extra parameter.
type Stone struct{}

func (*Stone) Move(int) string { return "" }

// Boulder rolls through a pointer and does satisfy Mover.
type Boulder struct{}

func (*Boulder) Move() string { return "rolls" }

type Crack struct{}

func (Crack) Error() string { return "crack" }
