package vehicles

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeItMove(t *testing.T) {
	tests := []struct {
		name  string
		mover Mover
		want  string
	}{
		{"car", NewCar("Toyota", "Camry"), "The Toyota Camry drives on the road.\n"},
		{"boat", NewBoat("Sea Ray", "Sundancer"), "The Sea Ray Sundancer sails on the water.\n"},
		{"plane", NewPlane("Boeing", "747"), "The Boeing 747 flies in the air.\n"},
		{"generic", NewVehicle("Acme"), "Vehicle moves.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, MakeItMove(&buf, tt.mover))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCarMoveMentionsBrandAndModel(t *testing.T) {
	got := NewCar("Toyota", "Camry").Move()
	assert.Contains(t, got, "Toyota")
	assert.Contains(t, got, "Camry")
}

func TestEmbeddedBrand(t *testing.T) {
	assert.Equal(t, "Toyota", NewCar("Toyota", "Camry").Brand())
	assert.Equal(t, "Sea Ray", NewBoat("Sea Ray", "Sundancer").Brand())
	assert.Equal(t, "Boeing", NewPlane("Boeing", "747").Brand())

	// The embedded base keeps its generic behaviour.
	assert.Equal(t, "Vehicle moves.", NewCar("Toyota", "Camry").Vehicle.Move())
}

func TestPointAdd(t *testing.T) {
	p1 := Point{X: 1, Y: 2}
	p2 := Point{X: 3, Y: 4}

	p3 := p1.Add(p2)
	assert.Equal(t, Point{X: 4, Y: 6}, p3)
	assert.Equal(t, "(4, 6)", p3.String())

	// operands are untouched
	assert.Equal(t, Point{X: 1, Y: 2}, p1)
	assert.Equal(t, Point{X: 3, Y: 4}, p2)
}

func TestPointString_Fractional(t *testing.T) {
	assert.Equal(t, "(1.5, -2)", Point{X: 1.5, Y: -2}.String())
}
