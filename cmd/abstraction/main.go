// Command abstraction prints the area and perimeter of a circle and a
// rectangle through the Shape capability.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olehluchkiv/oopconcepts/internal/logging"
	"github.com/olehluchkiv/oopconcepts/internal/shapes"
)

func main() {
	logger := logging.New(os.Stderr, slog.LevelWarn)
	if err := run(os.Stdout, logger); err != nil {
		logger.Error("abstraction demo failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger) error {
	circle, err := shapes.NewCircle(5)
	if err != nil {
		return fmt.Errorf("building circle: %w", err)
	}
	rectangle, err := shapes.NewRectangle(4, 6)
	if err != nil {
		return fmt.Errorf("building rectangle: %w", err)
	}

	// shapes.Shape is an interface and has no constructor; only complete
	// variants like Circle and Rectangle can be displayed.
	examples := []struct {
		title string
		shape shapes.Shape
	}{
		{"Circle details:", circle},
		{"Rectangle details:", rectangle},
	}
	for i, ex := range examples {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, ex.title)
		if err := shapes.DisplayInfo(w, ex.shape); err != nil {
			return err
		}
		logger.Debug("shape displayed", "kind", fmt.Sprintf("%T", ex.shape))
	}
	return nil
}
