//go:build property

package selector

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// optIdent generates either an absent part (empty string) or an
// identifier-shaped part value.
func optIdent() gopter.Gen {
	return gen.OneGenOf(gen.Const(""), gen.Identifier())
}

// applyCanonical feeds the supplied parts to a fresh builder in canonical
// kind order; empty optional strings are skipped.
func applyCanonical(el, id, pe string, classes, attrs, pcs []string) (Builder, error) {
	var (
		b   Builder
		err error
	)

	if el != "" {
		if b, err = b.Element(el); err != nil {
			return Builder{}, err
		}
	}
	if id != "" {
		if b, err = b.ID(id); err != nil {
			return Builder{}, err
		}
	}
	for _, c := range classes {
		if b, err = b.Class(c); err != nil {
			return Builder{}, err
		}
	}
	for _, a := range attrs {
		if b, err = b.Attr(a); err != nil {
			return Builder{}, err
		}
	}
	for _, p := range pcs {
		if b, err = b.PseudoClass(p); err != nil {
			return Builder{}, err
		}
	}
	if pe != "" {
		if b, err = b.PseudoElement(pe); err != nil {
			return Builder{}, err
		}
	}

	return b, nil
}

// TestBuilderRenderProperties validates the rendering grammar and purity
// of String over canonically ordered part sequences.
func TestBuilderRenderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: canonical sequences always build and render exactly the
	// grammar [element]?[#id]?[.class]*[[attr]]*[:pc]*[::pe]? with
	// fragments in call order.
	properties.Property("canonical sequences render the grammar", prop.ForAll(
		func(el, id, pe string, classes, attrs, pcs []string) bool {
			b, err := applyCanonical(el, id, pe, classes, attrs, pcs)
			if err != nil {
				return false
			}

			var expected strings.Builder
			expected.WriteString(el)
			if id != "" {
				expected.WriteString("#" + id)
			}
			for _, c := range classes {
				expected.WriteString("." + c)
			}
			for _, a := range attrs {
				expected.WriteString("[" + a + "]")
			}
			for _, p := range pcs {
				expected.WriteString(":" + p)
			}
			if pe != "" {
				expected.WriteString("::" + pe)
			}

			return b.String() == expected.String()
		},
		optIdent(),
		optIdent(),
		optIdent(),
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Identifier()),
	))

	// Property: String is idempotent.
	properties.Property("stringify is idempotent", prop.ForAll(
		func(el, id string, classes []string) bool {
			b, err := applyCanonical(el, id, "", classes, nil, nil)
			if err != nil {
				return false
			}

			return b.String() == b.String()
		},
		optIdent(),
		optIdent(),
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}

// TestBuilderBranchProperties validates that derivation never aliases
// state between builder values.
func TestBuilderBranchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: extending one branch leaves the ancestor and the sibling
	// branch byte-identical to their pre-branch renderings.
	properties.Property("branches are fully independent", prop.ForAll(
		func(base []string, leftExtra, rightExtra string) bool {
			ancestor, err := applyCanonical("", "", "", base, nil, nil)
			if err != nil {
				return false
			}
			before := ancestor.String()

			left, err := ancestor.Class(leftExtra)
			if err != nil {
				return false
			}
			right, err := ancestor.Class(rightExtra)
			if err != nil {
				return false
			}

			return ancestor.String() == before &&
				left.String() == before+"."+leftExtra &&
				right.String() == before+"."+rightExtra
		},
		gen.SliceOf(gen.Identifier()),
		gen.Identifier(),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

// TestBuilderOrderProperties validates the rank-based acceptance rule for
// every ordered pair of part kinds.
func TestBuilderOrderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(3579)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	applyKind := func(b Builder, kind PartKind) (Builder, error) {
		switch kind {
		case KindElement:
			return b.Element("x")
		case KindID:
			return b.ID("x")
		case KindClass:
			return b.Class("x")
		case KindAttribute:
			return b.Attr("x")
		case KindPseudoClass:
			return b.PseudoClass("x")
		default:
			return b.PseudoElement("x")
		}
	}

	singleton := func(kind PartKind) bool {
		return kind == KindElement || kind == KindID || kind == KindPseudoElement
	}

	// Property: after a part of kind `first`, a part of kind `second` is
	// accepted iff second ranks >= first and is not a repeated singleton.
	properties.Property("acceptance follows rank and uniqueness", prop.ForAll(
		func(first, second int) bool {
			f, s := PartKind(first), PartKind(second)

			b, err := applyKind(Builder{}, f)
			if err != nil {
				return false
			}

			_, err = applyKind(b, s)

			switch {
			case s < f:
				return errors.Is(err, AnyOrderViolation())
			case s == f && singleton(s):
				return errors.Is(err, AnyDuplicatePart())
			default:
				return err == nil
			}
		},
		gen.IntRange(0, 5),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}

// TestCombineProperties validates the composition formula, including
// nested combinations.
func TestCombineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(4680)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	tokens := gen.OneConstOf(Descendant, Child, AdjacentSibling, GeneralSibling)

	properties.Property("combine renders left space token space right", prop.ForAll(
		func(l, r string, comb Combinator) bool {
			left, err := Builder{}.Element(l)
			if err != nil {
				return false
			}
			right, err := Builder{}.Element(r)
			if err != nil {
				return false
			}

			combined := Combine(left, comb, right)

			return combined.String() == l+" "+string(comb)+" "+r
		},
		gen.Identifier(),
		gen.Identifier(),
		tokens,
	))

	properties.Property("nested combine composes recursively", prop.ForAll(
		func(a, b, c string, outer, inner Combinator) bool {
			ba, err := Builder{}.Element(a)
			if err != nil {
				return false
			}
			bb, err := Builder{}.Element(b)
			if err != nil {
				return false
			}
			bc, err := Builder{}.Element(c)
			if err != nil {
				return false
			}

			nested := Combine(ba, outer, Combine(bb, inner, bc))
			expected := a + " " + string(outer) + " " + b + " " + string(inner) + " " + c

			return nested.String() == expected
		},
		gen.Identifier(),
		gen.Identifier(),
		gen.Identifier(),
		tokens,
		tokens,
	))

	properties.TestingRun(t)
}
