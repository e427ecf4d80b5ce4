package garage

import "fmt"

type Mover interface {
	Move() string
}

type Car struct{ model string }

func (c Car) Move() string { return c.model + " drives" }

// Plane only moves through a pointer.
type Plane struct{ kind string }

func (p *Plane) Move() string { return p.kind + " flies" }

type Point struct{ X, Y int }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
