// Package shapes models geometric shapes behind an abstract Shape capability.
package shapes

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrInvalidDimension is returned when a shape is built with a non-positive or
// non-finite dimension.
var ErrInvalidDimension = errors.New("dimension must be a positive number")

// Shape is implemented by every concrete shape. It has no state of its own and
// cannot be instantiated directly.
type Shape interface {
	Area() float64
	Perimeter() float64
}

var (
	_ Shape = Circle{}
	_ Shape = Rectangle{}
)

// Circle is a Shape with a radius.
type Circle struct {
	radius float64
}

// NewCircle returns a Circle with the given radius.
func NewCircle(radius float64) (Circle, error) {
	if err := checkDimension("radius", radius); err != nil {
		return Circle{}, err
	}
	return Circle{radius: radius}, nil
}

// Radius returns the circle radius.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter returns 2π·r.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

// Rectangle is a Shape with a width and a height.
type Rectangle struct {
	width, height float64
}

// NewRectangle returns a Rectangle with the given width and height.
func NewRectangle(width, height float64) (Rectangle, error) {
	if err := checkDimension("width", width); err != nil {
		return Rectangle{}, err
	}
	if err := checkDimension("height", height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{width: width, height: height}, nil
}

// Width returns the rectangle width.
func (r Rectangle) Width() float64 { return r.width }

// Height returns the rectangle height.
func (r Rectangle) Height() float64 { return r.height }

// Area returns width·height.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

// Perimeter returns 2·(width+height).
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

// Describe formats the area and perimeter of s on a single line.
func Describe(s Shape) string {
	return fmt.Sprintf("This is a shape. Area: %g, Perimeter: %g", s.Area(), s.Perimeter())
}

// DisplayInfo writes Describe(s) followed by a newline to w.
func DisplayInfo(w io.Writer, s Shape) error {
	_, err := fmt.Fprintln(w, Describe(s))
	return err
}

func checkDimension(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %g: %w", name, v, ErrInvalidDimension)
	}
	return nil
}
