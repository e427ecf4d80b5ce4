// Command inheritance shows two animals sharing Eat through an embedded base
// while each supplies its own Speak.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/olehluchkiv/oopconcepts/internal/animals"
	"github.com/olehluchkiv/oopconcepts/internal/logging"
)

func main() {
	logger := logging.New(os.Stderr, slog.LevelWarn)
	if err := run(os.Stdout, logger); err != nil {
		logger.Error("inheritance demo failed", "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger) error {
	myDog := animals.NewDog("Buddy", "Golden Retriever")
	myCat := animals.NewCat("Whiskers", "black")

	for _, a := range []animals.Animal{myDog, myCat} {
		fmt.Fprintln(w, a.Speak())
		fmt.Fprintln(w, a.Eat())
		logger.Debug("animal shown", "name", a.Name())
	}

	var v any = myDog
	_, isDog := v.(*animals.Dog)
	_, isAnimal := v.(animals.Animal)
	fmt.Fprintf(w, "Is myDog a Dog? %t\n", isDog)
	fmt.Fprintf(w, "Is myDog an Animal? %t\n", isAnimal)

	v = myCat
	_, isCat := v.(*animals.Cat)
	_, isAnimal = v.(animals.Animal)
	fmt.Fprintf(w, "Is myCat a Cat? %t\n", isCat)
	fmt.Fprintf(w, "Is myCat an Animal? %t\n", isAnimal)
	return nil
}
