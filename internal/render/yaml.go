package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/olehluchkiv/oopconcepts/internal/capability"
)

// capabilityDoc is the YAML shape of one capability and its variants.
type capabilityDoc struct {
	Name     string       `yaml:"name"`
	Package  string       `yaml:"package"`
	Methods  []string     `yaml:"methods"`
	Variants []variantDoc `yaml:"variants"`
}

type variantDoc struct {
	Name       string `yaml:"name"`
	Package    string `yaml:"package"`
	ViaPointer bool   `yaml:"via_pointer,omitempty"`
}

// YAML encodes r as a list of capabilities, each with its sorted variants.
func YAML(r *capability.Report) ([]byte, error) {
	caps, _, bindings := sorted(r)

	docs := make([]capabilityDoc, 0, len(caps))
	index := make(map[string]int, len(caps))
	for _, c := range caps {
		doc := capabilityDoc{Name: c.Name, Package: c.PkgPath, Methods: []string{}, Variants: []variantDoc{}}
		for _, m := range c.Methods {
			doc.Methods = append(doc.Methods, m.Signature)
		}
		index[c.Key()] = len(docs)
		docs = append(docs, doc)
	}
	for _, b := range bindings {
		i, ok := index[b.Capability.Key()]
		if !ok {
			continue
		}
		docs[i].Variants = append(docs[i].Variants, variantDoc{
			Name:       b.Variant.Name,
			Package:    b.Variant.PkgPath,
			ViaPointer: b.ViaPointer,
		})
	}

	data, err := yaml.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
