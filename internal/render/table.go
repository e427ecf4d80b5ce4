package render

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/olehluchkiv/oopconcepts/internal/capability"
)

// Table writes one row per binding: capability, variant, package, receiver.
// It returns the first error the underlying writer reported.
func Table(w io.Writer, r *capability.Report) error {
	_, _, bindings := sorted(r)

	ew := &errWriter{w: w}
	table := tablewriter.NewWriter(ew)
	table.SetHeader([]string{"Capability", "Variant", "Package", "Receiver"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	for _, b := range bindings {
		receiver := "value"
		if b.ViaPointer {
			receiver = "pointer"
		}
		table.Append([]string{
			b.Capability.PkgName + "." + b.Capability.Name,
			b.Variant.Name,
			b.Variant.PkgPath,
			receiver,
		})
	}
	table.Render()
	return ew.err
}

// errWriter remembers the first write error; tablewriter discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
