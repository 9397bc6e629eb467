package selector

import "fmt"

// Combinator is the relational operator placed between two selectors.
// Combine accepts any string value; the constants cover the standard CSS
// combinators.
type Combinator string

const (
	Descendant      Combinator = " "
	Child           Combinator = ">"
	AdjacentSibling Combinator = "+"
	GeneralSibling  Combinator = "~"
)

// Combined is a terminal, already-rendered selector produced by Combine.
// It exposes no part methods; it can only be stringified or combined
// again.
type Combined struct {
	rendered string
}

// String returns the precomputed selector string.
func (c Combined) String() string { return c.rendered }

// Combine joins two built selectors with a combinator token. The token is
// always padded with a single space on each side, so a Descendant token
// produces three interior spaces by construction. Both operands may
// themselves be Combined values, which nests arbitrarily deep.
func Combine(left fmt.Stringer, comb Combinator, right fmt.Stringer) Combined {
	return Combined{rendered: left.String() + " " + string(comb) + " " + right.String()}
}
