package capability

import "go/types"

// Capability is a discovered interface: the method set a variant must provide.
type Capability struct {
	Name       string
	PkgPath    string
	PkgName    string
	Methods    []Method
	TypeObj    *types.Interface
	SourceFile string
}

// Variant is a discovered named non-interface type.
type Variant struct {
	Name       string
	PkgPath    string
	PkgName    string
	IsStruct   bool
	Methods    []Method
	TypeObj    *types.Named
	SourceFile string
}

// Method is a method name with its rendered signature, e.g. "Area() float64".
type Method struct {
	Name      string
	Signature string
}

// Binding records that a variant satisfies a capability.
type Binding struct {
	Variant    *Variant
	Capability *Capability
	ViaPointer bool // only *T, not T, has the full method set
}

// Report is the outcome of Analyze.
type Report struct {
	Capabilities []Capability
	Variants     []Variant
	Bindings     []Binding
}

// Options controls which packages and names end up in a Report.
type Options struct {
	Filter            string // package path prefix
	IncludeStdlib     bool
	IncludeUnexported bool
}

// Key returns the package-qualified name of c.
func (c *Capability) Key() string { return c.PkgPath + "." + c.Name }

// Key returns the package-qualified name of v.
func (v *Variant) Key() string { return v.PkgPath + "." + v.Name }
