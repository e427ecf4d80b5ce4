// Package vehicles demonstrates dispatch through an interface: MakeItMove
// works with any Mover without knowing its concrete type.
package vehicles

import (
	"fmt"
	"io"
)

// Mover is implemented by anything that can describe how it moves.
type Mover interface {
	Move() string
}

var (
	_ Mover = Vehicle{}
	_ Mover = Car{}
	_ Mover = Boat{}
	_ Mover = Plane{}
)

// Vehicle is the generic base. Variants embed it for Brand and replace Move.
type Vehicle struct {
	brand string
}

// NewVehicle returns a generic Vehicle of the given brand.
func NewVehicle(brand string) Vehicle {
	return Vehicle{brand: brand}
}

// Brand returns the manufacturer.
func (v Vehicle) Brand() string { return v.brand }

// Move returns the generic movement message.
func (v Vehicle) Move() string {
	return "Vehicle moves."
}

// Car is a road Vehicle with a model name.
type Car struct {
	Vehicle
	model string
}

// NewCar returns a Car of the given brand and model.
func NewCar(brand, model string) Car {
	return Car{Vehicle: NewVehicle(brand), model: model}
}

// Model returns the car model.
func (c Car) Model() string { return c.model }

// Move describes the car driving.
func (c Car) Move() string {
	return fmt.Sprintf("The %s %s drives on the road.", c.brand, c.model)
}

// Boat is a water Vehicle with its own name.
type Boat struct {
	Vehicle
	name string
}

// NewBoat returns a Boat of the given brand and name.
func NewBoat(brand, name string) Boat {
	return Boat{Vehicle: NewVehicle(brand), name: name}
}

// Name returns the boat name.
func (b Boat) Name() string { return b.name }

// Move describes the boat sailing.
func (b Boat) Move() string {
	return fmt.Sprintf("The %s %s sails on the water.", b.brand, b.name)
}

// Plane is a Vehicle identified by its aircraft type, e.g. "747".
type Plane struct {
	Vehicle
	kind string
}

// NewPlane returns a Plane of the given brand and aircraft type.
func NewPlane(brand, kind string) Plane {
	return Plane{Vehicle: NewVehicle(brand), kind: kind}
}

// Kind returns the aircraft type.
func (p Plane) Kind() string { return p.kind }

// Move describes the plane flying.
func (p Plane) Move() string {
	return fmt.Sprintf("The %s %s flies in the air.", p.brand, p.kind)
}

// MakeItMove writes m.Move() followed by a newline to w.
func MakeItMove(w io.Writer, m Mover) error {
	_, err := fmt.Fprintln(w, m.Move())
	return err
}
