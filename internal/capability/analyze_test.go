package capability

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func testdataDir(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

func analyze(t *testing.T, dir string, opts Options) *Report {
	t.Helper()
	report, err := Analyze(context.Background(), dir, opts, testLogger())
	require.NoError(t, err)
	return Filter(report, opts)
}

func findBinding(r *Report, variant, capability string) *Binding {
	for i := range r.Bindings {
		b := &r.Bindings[i]
		if b.Variant.Name == variant && b.Capability.Name == capability {
			return b
		}
	}
	return nil
}

func TestAnalyze_Zoo(t *testing.T) {
	r := analyze(t, testdataDir("zoo"), Options{})

	assert.Equal(t, []string{"Cat", "Dog"}, VariantsOf(r, "Speaker"))
	require.Len(t, r.Capabilities, 1)
	assert.Equal(t, "Speaker", r.Capabilities[0].Name)
	assert.Equal(t, "example.com/zoo", r.Capabilities[0].PkgPath)
	assert.Equal(t, "zoo.go", r.Capabilities[0].SourceFile)
	require.Len(t, r.Capabilities[0].Methods, 1)
	assert.Equal(t, "Speak() string", r.Capabilities[0].Methods[0].Signature)

	for _, v := range r.Variants {
		assert.NotEqual(t, "Fish", v.Name, "Fish has no Speak")
	}
}

func TestAnalyze_PointerReceiver(t *testing.T) {
	r := analyze(t, testdataDir("garage"), Options{})

	car := findBinding(r, "Car", "Mover")
	require.NotNil(t, car)
	assert.False(t, car.ViaPointer)

	plane := findBinding(r, "Plane", "Mover")
	require.NotNil(t, plane)
	assert.True(t, plane.ViaPointer)

	assert.Nil(t, findBinding(r, "Point", "Stringer"), "stdlib capabilities are filtered by default")
}

func TestAnalyze_IncludeStdlib(t *testing.T) {
	r := analyze(t, testdataDir("garage"), Options{IncludeStdlib: true})

	b := findBinding(r, "Point", "Stringer")
	require.NotNil(t, b)
	assert.Equal(t, "fmt", b.Capability.PkgPath)
}

func TestAnalyze_Unexported(t *testing.T) {
	r := analyze(t, testdataDir("hidden"), Options{})
	assert.Equal(t, []string{"Cat"}, VariantsOf(r, "Runner"))
	assert.Empty(t, VariantsOf(r, "walker"))

	r = analyze(t, testdataDir("hidden"), Options{IncludeUnexported: true})
	assert.Equal(t, []string{"Cat", "dog"}, VariantsOf(r, "Runner"))
	assert.Equal(t, []string{"dog"}, VariantsOf(r, "walker"))
}

func TestAnalyze_EmptyInterfaceIgnored(t *testing.T) {
	r := analyze(t, testdataDir("empty"), Options{})
	assert.Empty(t, r.Bindings)
	assert.Empty(t, r.Capabilities)
	assert.Empty(t, r.Variants)
}

func TestAnalyze_ThisModule(t *testing.T) {
	r := analyze(t, filepath.Join("..", ".."), Options{IncludeUnexported: true})

	assert.Equal(t, []string{"Circle", "Rectangle"}, VariantsOf(r, "Shape"))
	assert.Equal(t, []string{"Cat", "Dog"}, VariantsOf(r, "Animal"))
	assert.Equal(t, []string{"Boat", "Car", "Plane", "Vehicle"}, VariantsOf(r, "Mover"))

	dog := findBinding(r, "Dog", "Animal")
	require.NotNil(t, dog)
	assert.True(t, dog.ViaPointer)

	assert.Nil(t, findBinding(r, "base", "Animal"), "the embedded base has no Speak")
}

func TestAnalyze_PackagePrefixFilter(t *testing.T) {
	r := analyze(t, filepath.Join("..", ".."), Options{Filter: "github.com/olehluchkiv/oopconcepts/internal/shapes"})

	assert.Equal(t, []string{"Circle", "Rectangle"}, VariantsOf(r, "Shape"))
	assert.Empty(t, VariantsOf(r, "Mover"))
}

func TestAnalyze_SignatureMismatchIsNotABinding(t *testing.T) {
	r := analyze(t, testdataDir("quarry"), Options{})

	assert.Nil(t, findBinding(r, "Rock", "Mover"), "Move() int does not satisfy Move() string")
	assert.Nil(t, findBinding(r, "Stone", "Mover"), "Move(int) string does not satisfy Move() string")

	boulder := findBinding(r, "Boulder", "Mover")
	require.NotNil(t, boulder)
	assert.True(t, boulder.ViaPointer)
	assert.Equal(t, []string{"Boulder"}, VariantsOf(r, "Mover"))
}

func TestAnalyze_BuiltinError(t *testing.T) {
	r := analyze(t, testdataDir("quarry"), Options{})
	assert.Nil(t, findBinding(r, "Crack", "error"), "builtin error needs IncludeStdlib")

	r = analyze(t, testdataDir("quarry"), Options{IncludeStdlib: true})
	b := findBinding(r, "Crack", "error")
	require.NotNil(t, b)
	assert.Equal(t, "builtin", b.Capability.PkgPath)
	assert.False(t, b.ViaPointer)
	require.Len(t, b.Capability.Methods, 1)
	assert.Equal(t, "Error() string", b.Capability.Methods[0].Signature)
}

func TestAnalyze_ThisModuleWithdrawErrorIsAnError(t *testing.T) {
	r := analyze(t, filepath.Join("..", ".."), Options{IncludeStdlib: true, IncludeUnexported: true})

	b := findBinding(r, "withdrawError", "error")
	require.NotNil(t, b)
	assert.True(t, b.ViaPointer)
}
