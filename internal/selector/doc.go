// Package selector provides programmatic construction of CSS selector
// strings through an immutable builder.
//
// A selector is assembled from discrete parts (element, id, classes,
// attributes, pseudo-classes, pseudo-element) which must be supplied in
// the canonical CSS order. Each builder method returns a new Builder
// value; earlier values are never modified, so branching from a common
// ancestor yields fully independent chains.
//
// # Basic Usage
//
//	b, err := selector.Builder{}.Element("a")
//	b, err = b.Class("external")
//	b, err = b.PseudoClass("hover")
//	fmt.Println(b) // a.external:hover
//
// # Composition
//
// Two built selectors can be joined with a combinator:
//
//	combined := selector.Combine(left, selector.Child, right)
//	fmt.Println(combined) // "ul > li"
//
// The package constructs selectors only. It does not parse CSS, validate
// part names against the CSS grammar, compute specificity, or match
// against a DOM.
package selector
