package stylesheet

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/cssel/internal/errors"
	"github.com/conneroisu/cssel/internal/selector"
)

// Document is the YAML representation of a stylesheet.
//
// Each rule names a selector (either a flat parts object or a combine
// node joining two nested selectors) and an ordered declarations list:
//
//	rules:
//	  - selector:
//	      element: a
//	      classes: [external]
//	      pseudo_classes: [hover]
//	    declarations:
//	      - property: color
//	        value: red
//	  - selector:
//	      combine:
//	        left: {element: ul, classes: [menu]}
//	        combinator: ">"
//	        right: {element: li}
//	    declarations:
//	      - property: margin
//	        value: "0"
type Document struct {
	Rules []RuleSpec `yaml:"rules"`
}

// RuleSpec is one rule entry in a document.
type RuleSpec struct {
	Selector     SelectorSpec  `yaml:"selector"`
	Declarations []Declaration `yaml:"declarations"`
}

// SelectorSpec describes a selector either as flat parts or as a
// combination of two nested selectors. The two forms are mutually
// exclusive.
type SelectorSpec struct {
	Element       string   `yaml:"element"`
	ID            string   `yaml:"id"`
	Classes       []string `yaml:"classes"`
	Attributes    []string `yaml:"attributes"`
	PseudoClasses []string `yaml:"pseudo_classes"`
	PseudoElement string   `yaml:"pseudo_element"`

	Combine *CombineSpec `yaml:"combine"`
}

// CombineSpec joins two selector specs with a combinator token. An empty
// token means the descendant combinator.
type CombineSpec struct {
	Left       SelectorSpec `yaml:"left"`
	Combinator string       `yaml:"combinator"`
	Right      SelectorSpec `yaml:"right"`
}

func (s SelectorSpec) hasParts() bool {
	return s.Element != "" || s.ID != "" || len(s.Classes) > 0 ||
		len(s.Attributes) > 0 || len(s.PseudoClasses) > 0 || s.PseudoElement != ""
}

// build resolves the spec into a stringifiable selector via the selector
// package.
func (s SelectorSpec) build() (fmt.Stringer, error) {
	if s.Combine != nil {
		if s.hasParts() {
			return nil, errors.NewValidationError("selector_ambiguous",
				"selector must use either parts or combine, not both")
		}

		left, err := s.Combine.Left.build()
		if err != nil {
			return nil, err
		}
		right, err := s.Combine.Right.build()
		if err != nil {
			return nil, err
		}

		comb := selector.Combinator(s.Combine.Combinator)
		if comb == "" {
			comb = selector.Descendant
		}

		return selector.Combine(left, comb, right), nil
	}

	var (
		b   selector.Builder
		err error
	)

	if s.Element != "" {
		if b, err = b.Element(s.Element); err != nil {
			return nil, err
		}
	}
	if s.ID != "" {
		if b, err = b.ID(s.ID); err != nil {
			return nil, err
		}
	}
	for _, c := range s.Classes {
		if b, err = b.Class(c); err != nil {
			return nil, err
		}
	}
	for _, a := range s.Attributes {
		if b, err = b.Attr(a); err != nil {
			return nil, err
		}
	}
	for _, p := range s.PseudoClasses {
		if b, err = b.PseudoClass(p); err != nil {
			return nil, err
		}
	}
	if s.PseudoElement != "" {
		if b, err = b.PseudoElement(s.PseudoElement); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build resolves every rule in the document into a Stylesheet.
func (d Document) Build() (Stylesheet, error) {
	sheet := Stylesheet{Rules: make([]Rule, 0, len(d.Rules))}

	for i, spec := range d.Rules {
		sel, err := spec.Selector.build()
		if err != nil {
			return Stylesheet{}, errors.Wrap(err, errors.ErrorTypeValidation,
				"rule_invalid", fmt.Sprintf("rule %d has an invalid selector", i)).
				WithContext("rule", i)
		}

		sheet.Rules = append(sheet.Rules, Rule{
			Selector:     sel,
			Declarations: spec.Declarations,
		})
	}

	return sheet, nil
}

// Load parses a YAML document from r.
func Load(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, errors.NewIOError("read_failed", "cannot read document", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(err, errors.ErrorTypeValidation,
			"yaml_invalid", "document is not valid YAML")
	}

	return doc, nil
}

// LoadFile parses the YAML document at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, errors.NewIOError("open_failed", "cannot open document", err).
			WithContext("path", path)
	}
	defer f.Close()

	return Load(f)
}
