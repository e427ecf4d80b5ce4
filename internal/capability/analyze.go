package capability

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Analyze loads every package under dir and reports which named types satisfy
// which interfaces. When opts.IncludeStdlib is set, interfaces declared by
// directly imported packages and the builtin error interface are collected
// too, so capabilities such as fmt.Stringer can be matched.
func Analyze(ctx context.Context, dir string, opts Options, logger *slog.Logger) (*Report, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo | packages.NeedImports,
		Dir:     dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}
	logger.Info("packages loaded", "packages_count", len(pkgs))

	root, err := filepath.Abs(dir)
	if err != nil {
		root = dir
	}
	c := &collector{
		root:   root,
		seen:   make(map[string]bool),
		logger: logger,
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			logger.Warn("package load error", "package", pkg.PkgPath, "error", e.Msg)
		}
		if pkg.Types == nil {
			continue
		}
		c.collect(pkg.Types, pkg.Fset, true)
		if !opts.IncludeStdlib {
			continue
		}
		for _, imp := range pkg.Types.Imports() {
			c.collect(imp, pkg.Fset, false)
		}
	}
	if opts.IncludeStdlib {
		c.collectError()
	}
	logger.Info("types collected", "capabilities", len(c.caps), "variants", len(c.variants))

	bindings := bind(c.caps, c.variants, logger)
	logger.Info("analysis complete", "bindings", len(bindings))

	return &Report{
		Capabilities: c.caps,
		Variants:     c.variants,
		Bindings:     bindings,
	}, nil
}

type collector struct {
	root     string
	seen     map[string]bool
	caps     []Capability
	variants []Variant
	logger   *slog.Logger
}

// collect records the interfaces of pkg and, when withVariants is set, its
// concrete named types. Imported packages only contribute interfaces.
func (c *collector) collect(pkg *types.Package, fset *token.FileSet, withVariants bool) {
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		key := pkg.Path() + "." + name

		if iface, ok := named.Underlying().(*types.Interface); ok {
			if c.seen[key] {
				continue
			}
			c.seen[key] = true
			c.caps = append(c.caps, Capability{
				Name:       name,
				PkgPath:    pkg.Path(),
				PkgName:    pkg.Name(),
				Methods:    interfaceMethods(iface),
				TypeObj:    iface,
				SourceFile: sourceFile(fset, tn.Pos(), c.root),
			})
			c.logger.Debug("found capability", "name", name, "package", pkg.Path(), "methods", iface.NumMethods())
			continue
		}

		if !withVariants || c.seen[key] {
			continue
		}
		c.seen[key] = true
		_, isStruct := named.Underlying().(*types.Struct)
		c.variants = append(c.variants, Variant{
			Name:       name,
			PkgPath:    pkg.Path(),
			PkgName:    pkg.Name(),
			IsStruct:   isStruct,
			Methods:    declaredMethods(named),
			TypeObj:    named,
			SourceFile: sourceFile(fset, tn.Pos(), c.root),
		})
		c.logger.Debug("found variant", "name", name, "package", pkg.Path())
	}
}

// collectError records the universe-scope error interface as builtin.error.
func (c *collector) collectError() {
	const key = "builtin.error"
	if c.seen[key] {
		return
	}
	iface, ok := types.Universe.Lookup("error").Type().Underlying().(*types.Interface)
	if !ok {
		return
	}
	c.seen[key] = true
	c.caps = append(c.caps, Capability{
		Name:    "error",
		PkgPath: "builtin",
		PkgName: "builtin",
		Methods: interfaceMethods(iface),
		TypeObj: iface,
	})
}

func bind(caps []Capability, variants []Variant, logger *slog.Logger) []Binding {
	var bindings []Binding

	for i := range variants {
		v := &variants[i]
		ptr := types.NewPointer(v.TypeObj)
		for j := range caps {
			c := &caps[j]
			if c.TypeObj.NumMethods() == 0 {
				continue
			}
			var viaPointer bool
			switch {
			case types.Implements(v.TypeObj, c.TypeObj):
			case types.Implements(ptr, c.TypeObj):
				viaPointer = true
			default:
				continue
			}
			bindings = append(bindings, Binding{Variant: v, Capability: c, ViaPointer: viaPointer})
			logger.Debug("binding found", "variant", v.Name, "capability", c.Name, "via_pointer", viaPointer)
		}
	}
	return bindings
}

func interfaceMethods(iface *types.Interface) []Method {
	methods := make([]Method, iface.NumMethods())
	for i := range methods {
		m := iface.Method(i)
		methods[i] = Method{Name: m.Name(), Signature: signature(m)}
	}
	return methods
}

func declaredMethods(named *types.Named) []Method {
	var methods []Method
	for i := 0; i < named.NumMethods(); i++ {
		m := named.Method(i)
		methods = append(methods, Method{Name: m.Name(), Signature: signature(m)})
	}
	return methods
}

// signature renders fn as "Name(params) results" with package-name qualifiers.
func signature(fn *types.Func) string {
	sig := fn.Type().(*types.Signature)
	qualify := func(p *types.Package) string { return p.Name() }

	var b strings.Builder
	b.WriteString(fn.Name())
	b.WriteString("(")
	for i := 0; i < sig.Params().Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(types.TypeString(sig.Params().At(i).Type(), qualify))
	}
	b.WriteString(")")

	results := sig.Results()
	switch results.Len() {
	case 0:
	case 1:
		b.WriteString(" " + types.TypeString(results.At(0).Type(), qualify))
	default:
		parts := make([]string, results.Len())
		for i := range parts {
			parts[i] = types.TypeString(results.At(i).Type(), qualify)
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + ")")
	}
	return b.String()
}

func sourceFile(fset *token.FileSet, pos token.Pos, root string) string {
	if fset == nil || !pos.IsValid() {
		return ""
	}
	position := fset.Position(pos)
	if position.Filename == "" {
		return ""
	}
	rel, err := filepath.Rel(root, position.Filename)
	if err != nil {
		return position.Filename
	}
	return rel
}
