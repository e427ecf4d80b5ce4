// Package render turns a capability report into Mermaid, tabular, or YAML
// output. Every renderer orders its output deterministically.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olehluchkiv/oopconcepts/internal/capability"
)

// MermaidOptions controls Mermaid diagram generation.
type MermaidOptions struct {
	MaxMethodsPerBox int  // 0 means unlimited
	IncludeInit      bool // emit the %%{init:}%% theme directive
}

// DefaultMermaidOptions returns the options used by capmap.
func DefaultMermaidOptions() MermaidOptions {
	return MermaidOptions{MaxMethodsPerBox: 5, IncludeInit: true}
}

// Mermaid renders r as a classDiagram. Capabilities are drawn as
// <<interface>> boxes with their methods; variants as empty boxes. A solid
// arrow means T satisfies the capability, a dotted one means only *T does.
func Mermaid(r *capability.Report, opts MermaidOptions) string {
	caps, variants, bindings := sorted(r)

	var b strings.Builder
	if opts.IncludeInit {
		b.WriteString("%%{init: {'theme': 'base', 'themeVariables': {'primaryColor': '#ffffff', 'primaryBorderColor': '#cccccc', 'lineColor': '#555555'}}}%%\n")
	}
	b.WriteString("classDiagram")
	if len(caps) == 0 && len(variants) == 0 {
		return b.String()
	}
	b.WriteString("\n    direction LR")
	b.WriteString("\n    classDef capabilityStyle fill:#2374ab,stroke:#1a5a8a,color:#fff,stroke-width:2px,font-weight:bold")
	b.WriteString("\n    classDef variantStyle fill:#4a9c6d,stroke:#357a50,color:#fff,stroke-width:2px\n")

	for _, c := range caps {
		fmt.Fprintf(&b, "\n    class %s {\n        <<interface>>\n", NodeID(c.PkgName, c.Name))
		if c.SourceFile != "" {
			fmt.Fprintf(&b, "        %%%% file: %s\n", c.SourceFile)
		}
		writeMethods(&b, c.Methods, opts.MaxMethodsPerBox)
		b.WriteString("    }")
	}
	if len(caps) > 0 && len(variants) > 0 {
		b.WriteString("\n")
	}
	for _, v := range variants {
		fmt.Fprintf(&b, "\n    class %s {\n", NodeID(v.PkgName, v.Name))
		if v.SourceFile != "" {
			fmt.Fprintf(&b, "        %%%% file: %s\n", v.SourceFile)
		}
		b.WriteString("    }")
	}

	if len(bindings) > 0 {
		b.WriteString("\n")
	}
	for _, bd := range bindings {
		arrow := "--|>"
		if bd.ViaPointer {
			arrow = "..|>"
		}
		fmt.Fprintf(&b, "\n    %s %s %s",
			NodeID(bd.Variant.PkgName, bd.Variant.Name), arrow,
			NodeID(bd.Capability.PkgName, bd.Capability.Name))
	}

	b.WriteString("\n")
	for _, c := range caps {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" capabilityStyle", NodeID(c.PkgName, c.Name))
	}
	for _, v := range variants {
		fmt.Fprintf(&b, "\n    cssClass \"%s\" variantStyle", NodeID(v.PkgName, v.Name))
	}
	return b.String()
}

// NodeID builds a Mermaid-safe identifier from a package and type name.
func NodeID(pkgName, name string) string {
	return strings.NewReplacer("/", "_", ".", "_", "-", "_").Replace(pkgName + "_" + name)
}

// SanitizeSignature strips characters Mermaid treats as markup in class labels.
func SanitizeSignature(sig string) string {
	sig = strings.ReplaceAll(sig, "<-chan", "chan")
	sig = strings.ReplaceAll(sig, "interface{}", "any")
	return strings.ReplaceAll(sig, "{}", "")
}

func writeMethods(b *strings.Builder, methods []capability.Method, limit int) {
	n := len(methods)
	if limit > 0 && n > limit {
		n = limit
	}
	for _, m := range methods[:n] {
		fmt.Fprintf(b, "        +%s\n", SanitizeSignature(m.Signature))
	}
	if n < len(methods) {
		b.WriteString("        ...\n")
	}
}

// sorted returns copies of the report slices ordered by package then name.
func sorted(r *capability.Report) ([]capability.Capability, []capability.Variant, []capability.Binding) {
	caps := append([]capability.Capability(nil), r.Capabilities...)
	sort.Slice(caps, func(i, j int) bool {
		return caps[i].PkgName+"."+caps[i].Name < caps[j].PkgName+"."+caps[j].Name
	})

	variants := append([]capability.Variant(nil), r.Variants...)
	sort.Slice(variants, func(i, j int) bool {
		return variants[i].PkgName+"."+variants[i].Name < variants[j].PkgName+"."+variants[j].Name
	})

	bindings := append([]capability.Binding(nil), r.Bindings...)
	sort.Slice(bindings, func(i, j int) bool {
		ci := bindings[i].Capability.PkgName + "." + bindings[i].Capability.Name
		cj := bindings[j].Capability.PkgName + "." + bindings[j].Capability.Name
		if ci != cj {
			return ci < cj
		}
		return bindings[i].Variant.PkgName+"."+bindings[i].Variant.Name <
			bindings[j].Variant.PkgName+"."+bindings[j].Variant.Name
	})
	return caps, variants, bindings
}
