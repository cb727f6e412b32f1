package selector

// Combinator is one of the four CSS relational symbols joining two selectors.
type Combinator string

const (
	Descendant Combinator = " " // "a b"
	Adjacent   Combinator = "+" // "a + b"
	Sibling    Combinator = "~" // "a ~ b"
	Child      Combinator = ">" // "a > b"
)

// Valid returns true if c is one of the recognized CSS combinators.
func (c Combinator) Valid() bool {
	switch c {
	case Descendant, Adjacent, Sibling, Child:
		return true
	default:
		return false
	}
}

// String returns the CSS representation of the combinator.
func (c Combinator) String() string {
	return string(c)
}

// rank is the fixed position of a fragment kind in the required ordering of a
// simple selector: element < id < class < attribute < pseudo-class <
// pseudo-element. A builder never accepts a fragment of lower rank than the
// highest rank already used.
type rank int

const (
	rankElement rank = iota
	rankID
	rankClass
	rankAttribute
	rankPseudoClass
	rankPseudoElement
	// rankJoined marks a combined selector; no fragment can follow it.
	rankJoined
)

// String returns the fragment kind name for error messages.
func (r rank) String() string {
	switch r {
	case rankElement:
		return "element"
	case rankID:
		return "id"
	case rankClass:
		return "class"
	case rankAttribute:
		return "attribute"
	case rankPseudoClass:
		return "pseudo-class"
	case rankPseudoElement:
		return "pseudo-element"
	case rankJoined:
		return "combined selector"
	default:
		// this should never happen
		return "unknown"
	}
}
