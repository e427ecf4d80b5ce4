// Command polymorphism moves three different vehicles through one function
// and adds two points.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olehluchkiv/oopconcepts/internal/logging"
	"github.com/olehluchkiv/oopconcepts/internal/vehicles"
)

func main() {
	logger := logging.New(os.Stderr, slog.LevelWarn)
	if err := run(os.Stdout, logger); err != nil {
		logger.Error("polymorphism demo failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger) error {
	fleet := []vehicles.Mover{
		vehicles.NewCar("Toyota", "Camry"),
		vehicles.NewBoat("Sea Ray", "Sundancer"),
		vehicles.NewPlane("Boeing", "747"),
	}
	for _, m := range fleet {
		if err := vehicles.MakeItMove(w, m); err != nil {
			return err
		}
		logger.Debug("vehicle moved", "kind", fmt.Sprintf("%T", m))
	}

	p1 := vehicles.Point{X: 1, Y: 2}
	p2 := vehicles.Point{X: 3, Y: 4}
	fmt.Fprintf(w, "Point addition: %s\n", p1.Add(p2))
	return nil
}
