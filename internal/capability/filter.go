package capability

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Filter applies opts to r. Capabilities and variants that no longer take part
// in any binding are pruned.
func Filter(r *Report, opts Options) *Report {
	out := &Report{}
	keepCap := make(map[string]bool)
	keepVar := make(map[string]bool)

	for _, b := range r.Bindings {
		c, v := b.Capability, b.Variant
		if !opts.IncludeStdlib && isStdlib(c.PkgPath) {
			continue
		}
		if !opts.IncludeUnexported && (!exportedCapability(c) || !exported(v.Name)) {
			continue
		}
		if opts.Filter != "" && !strings.HasPrefix(c.PkgPath, opts.Filter) && !strings.HasPrefix(v.PkgPath, opts.Filter) {
			continue
		}
		out.Bindings = append(out.Bindings, b)
		keepCap[c.Key()] = true
		keepVar[v.Key()] = true
	}

	for i := range r.Capabilities {
		if keepCap[r.Capabilities[i].Key()] {
			out.Capabilities = append(out.Capabilities, r.Capabilities[i])
		}
	}
	for i := range r.Variants {
		if keepVar[r.Variants[i].Key()] {
			out.Variants = append(out.Variants, r.Variants[i])
		}
	}
	return out
}

// VariantsOf returns the names of the variants bound to the capability called
// name, sorted. The package path is ignored.
func VariantsOf(r *Report, name string) []string {
	var names []string
	for _, b := range r.Bindings {
		if b.Capability.Name == name {
			names = append(names, b.Variant.Name)
		}
	}
	sort.Strings(names)
	return names
}

// isStdlib reports whether the first path element has no dot.
func isStdlib(pkgPath string) bool {
	first, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(first, ".")
}

func exported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// exportedCapability treats the builtin error interface as exported.
func exportedCapability(c *Capability) bool {
	return c.PkgPath == "builtin" || exported(c.Name)
}
