package selector

// The entry surface of the package: each constructor starts a fresh builder
// with its first fragment already applied so call sites read as one chain,
// e.g. selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").
// There is no shared state - every call returns an independent builder owned
// by its caller.

// Element starts a new builder with the given tag name.
func Element(value string) *Builder {
	return new(Builder).Element(value)
}

// ID starts a new builder with the given id.
func ID(value string) *Builder {
	return new(Builder).ID(value)
}

// Class starts a new builder with the given class name.
func Class(value string) *Builder {
	return new(Builder).Class(value)
}

// Attr starts a new builder with the given attribute expression.
func Attr(value string) *Builder {
	return new(Builder).Attr(value)
}

// PseudoClass starts a new builder with the given pseudo-class.
func PseudoClass(value string) *Builder {
	return new(Builder).PseudoClass(value)
}

// PseudoElement starts a new builder with the given pseudo-element.
func PseudoElement(value string) *Builder {
	return new(Builder).PseudoElement(value)
}

// Combine starts a new builder joining two already-configured builders with
// the given combinator. Both sides are rendered immediately; the result is a
// combined selector that accepts no further fragments but can itself be a
// side of another Combine.
func Combine(left *Builder, c Combinator, right *Builder) *Builder {
	return new(Builder).Combine(left, c, right)
}
