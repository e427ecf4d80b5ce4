// Package animals shows code reuse through struct embedding. Every variant
// embeds base for its name and Eat behaviour and supplies its own Speak.
package animals

import "fmt"

// Animal is the capability set shared by every variant. The embedded base
// type has no Speak method, so only complete variants satisfy it.
type Animal interface {
	Name() string
	Speak() string
	Eat() string
}

var (
	_ Animal = (*Dog)(nil)
	_ Animal = (*Cat)(nil)
)

type base struct {
	name string
}

// Name returns the animal name.
func (b base) Name() string { return b.name }

// Eat reports that the animal is eating.
func (b base) Eat() string {
	return fmt.Sprintf("%s is eating.", b.name)
}

// Dog is an Animal with a breed.
type Dog struct {
	base
	breed string
}

// NewDog returns a Dog called name.
func NewDog(name, breed string) *Dog {
	return &Dog{base: base{name: name}, breed: breed}
}

// Breed returns the dog breed.
func (d *Dog) Breed() string { return d.breed }

// Speak returns a bark that names the dog and its breed.
func (d *Dog) Speak() string {
	return fmt.Sprintf("%s (%s) barks!", d.name, d.breed)
}

// Cat is an Animal with a coat color.
type Cat struct {
	base
	color string
}

// NewCat returns a Cat called name.
func NewCat(name, color string) *Cat {
	return &Cat{base: base{name: name}, color: color}
}

// Color returns the coat color.
func (c *Cat) Color() string { return c.color }

// Speak returns a meow that names the cat and its color.
func (c *Cat) Speak() string {
	return fmt.Sprintf("%s (%s cat) meows!", c.name, c.color)
}
