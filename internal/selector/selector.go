package selector

import "strings"

// PartKind identifies one category of selector part. The numeric value is
// the part's rank in the canonical ordering: parts must be added to a
// Builder in non-decreasing rank order.
type PartKind int

const (
	KindElement PartKind = iota
	KindID
	KindClass
	KindAttribute
	KindPseudoClass
	KindPseudoElement
)

// String returns a human-readable name for the part kind.
func (k PartKind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// Builder accumulates selector parts and renders them as a selector
// string. The zero value is an empty builder ready for use.
//
// Builder is an immutable value: every part method returns a derived
// Builder and leaves the receiver untouched. Internal slices are copied
// on derivation, so two builders branched from the same ancestor never
// share storage and concurrent readers need no synchronization.
type Builder struct {
	element       string
	id            string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasPseudoElement bool

	classes       []string
	attributes    []string
	pseudoClasses []string

	last    PartKind
	hasLast bool
}

// advance checks the ordering invariant for a part of the given kind and
// returns a copy of b with the last-added kind updated. The copy owns
// fresh slices so later appends cannot leak into the receiver's chain.
func (b Builder) advance(kind PartKind) (Builder, error) {
	if b.hasLast && kind < b.last {
		return Builder{}, &OrderViolationError{Kind: kind, Last: b.last}
	}

	next := b
	next.classes = append([]string(nil), b.classes...)
	next.attributes = append([]string(nil), b.attributes...)
	next.pseudoClasses = append([]string(nil), b.pseudoClasses...)
	next.last = kind
	next.hasLast = true

	return next, nil
}

// Element sets the element name (e.g. "div"). It may be set once per
// chain and only before any other part.
func (b Builder) Element(name string) (Builder, error) {
	if b.hasElement {
		return Builder{}, &DuplicatePartError{Kind: KindElement}
	}

	next, err := b.advance(KindElement)
	if err != nil {
		return Builder{}, err
	}

	next.element = name
	next.hasElement = true

	return next, nil
}

// ID sets the id part, rendered as "#name". It may be set once per chain.
func (b Builder) ID(name string) (Builder, error) {
	if b.hasID {
		return Builder{}, &DuplicatePartError{Kind: KindID}
	}

	next, err := b.advance(KindID)
	if err != nil {
		return Builder{}, err
	}

	next.id = name
	next.hasID = true

	return next, nil
}

// Class appends a class part, rendered as ".name". Classes may repeat and
// render in call order.
func (b Builder) Class(name string) (Builder, error) {
	next, err := b.advance(KindClass)
	if err != nil {
		return Builder{}, err
	}

	next.classes = append(next.classes, name)

	return next, nil
}

// Attr appends an attribute part, rendered as "[expr]". The expression is
// emitted verbatim (e.g. `href$=".png"`); no escaping is applied.
func (b Builder) Attr(expr string) (Builder, error) {
	next, err := b.advance(KindAttribute)
	if err != nil {
		return Builder{}, err
	}

	next.attributes = append(next.attributes, expr)

	return next, nil
}

// PseudoClass appends a pseudo-class part, rendered as ":name".
func (b Builder) PseudoClass(name string) (Builder, error) {
	next, err := b.advance(KindPseudoClass)
	if err != nil {
		return Builder{}, err
	}

	next.pseudoClasses = append(next.pseudoClasses, name)

	return next, nil
}

// PseudoElement sets the pseudo-element part, rendered as "::name". It
// may be set once per chain and only as the final kind.
func (b Builder) PseudoElement(name string) (Builder, error) {
	if b.hasPseudoElement {
		return Builder{}, &DuplicatePartError{Kind: KindPseudoElement}
	}

	next, err := b.advance(KindPseudoElement)
	if err != nil {
		return Builder{}, err
	}

	next.pseudoElement = name
	next.hasPseudoElement = true

	return next, nil
}

// String renders the accumulated parts in canonical order:
// element, #id, .classes, [attributes], :pseudo-classes, ::pseudo-element.
// Fragments of the same kind concatenate in call order with no delimiter.
// String is a pure function of the builder value.
func (b Builder) String() string {
	var sb strings.Builder

	if b.hasElement {
		sb.WriteString(b.element)
	}
	if b.hasID {
		sb.WriteByte('#')
		sb.WriteString(b.id)
	}
	for _, c := range b.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	for _, a := range b.attributes {
		sb.WriteByte('[')
		sb.WriteString(a)
		sb.WriteByte(']')
	}
	for _, p := range b.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if b.hasPseudoElement {
		sb.WriteString("::")
		sb.WriteString(b.pseudoElement)
	}

	return sb.String()
}
