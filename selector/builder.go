// Package selector builds CSS selector strings through a fluent, validating
// builder. It only constructs selector text - it never parses CSS and never
// matches selectors against a document.
package selector

import "strings"

// joined keeps two already-stringified selectors and the combinator between
// them. A builder carrying a joined pair represents a combined selector and
// holds no fragment data of its own.
type joined struct {
	left       string
	combinator Combinator
	right      string
}

// Builder accumulates fragments of a simple CSS selector (element, id,
// classes, attribute expression, pseudo-classes, pseudo-element) or a single
// combined pair of sub-selectors, and renders the result with Build.
//
// Every setter mutates the builder in place and returns the same instance so
// calls chain naturally. Fragments must arrive in CSS order: element, id,
// classes, attribute, pseudo-classes, pseudo-element. The first rule
// violation is recorded, all later setters become no-ops and Build returns
// the recorded error - the chain must then be discarded.
//
// A Builder is not safe for concurrent use; each instance is meant to be
// owned by the single chain that created it.
type Builder struct {
	element       string
	id            string
	classes       []string
	attribute     string
	pseudoClasses []string
	pseudoElement string
	joined        *joined

	hasElement       bool
	hasID            bool
	hasAttribute     bool
	hasPseudoElement bool

	last rank
	err  error
}

// advance enforces the fragment ordering rule for a setter of rank r. It
// returns false when the builder is already failed or r regresses on the
// highest rank used so far.
func (b *Builder) advance(r rank, value string) bool {
	if b.err != nil {
		return false
	}
	if r < b.last {
		b.err = orderErr(r, value, b.last)
		return false
	}
	b.last = r
	return true
}

// Element sets the tag name of the selector. It must be the first fragment
// and may be set only once.
func (b *Builder) Element(value string) *Builder {
	if !b.advance(rankElement, value) {
		return b
	}
	if b.hasElement {
		b.err = duplicateErr(rankElement, value)
		return b
	}
	b.element = value
	b.hasElement = true
	return b
}

// ID sets the id of the selector, rendered as "#value". May be set only once.
func (b *Builder) ID(value string) *Builder {
	if !b.advance(rankID, value) {
		return b
	}
	if b.hasID {
		b.err = duplicateErr(rankID, value)
		return b
	}
	b.id = value
	b.hasID = true
	return b
}

// Class appends a class name, rendered as ".value". Repeated calls accumulate
// in call order.
func (b *Builder) Class(value string) *Builder {
	if !b.advance(rankClass, value) {
		return b
	}
	b.classes = append(b.classes, value)
	return b
}

// Attr sets the attribute expression verbatim, rendered as "[value]". The
// expression content is not validated and the last written value wins.
func (b *Builder) Attr(value string) *Builder {
	if !b.advance(rankAttribute, value) {
		return b
	}
	b.attribute = value
	b.hasAttribute = true
	return b
}

// PseudoClass appends a pseudo-class name, rendered as ":value". Repeated
// calls accumulate in call order.
func (b *Builder) PseudoClass(value string) *Builder {
	if !b.advance(rankPseudoClass, value) {
		return b
	}
	b.pseudoClasses = append(b.pseudoClasses, value)
	return b
}

// PseudoElement sets the pseudo-element name, rendered as "::value". May be
// set only once and no fragment can follow it except more pseudo-element
// attempts (which fail as duplicates).
func (b *Builder) PseudoElement(value string) *Builder {
	if !b.advance(rankPseudoElement, value) {
		return b
	}
	if b.hasPseudoElement {
		b.err = duplicateErr(rankPseudoElement, value)
		return b
	}
	b.pseudoElement = value
	b.hasPseudoElement = true
	return b
}

// Combine turns b into a combined selector joining the rendered text of left
// and right with the given combinator. Both sides must be fully configured:
// they are stringified here and their text is what b keeps. A sticky error on
// either side propagates to b, as does an unrecognized combinator. After
// Combine the builder accepts no further fragments.
func (b *Builder) Combine(left *Builder, c Combinator, right *Builder) *Builder {
	if b.err != nil {
		return b
	}
	if b.last == rankJoined {
		// one combined pair per builder, deeper nesting wraps builders
		b.err = duplicateErr(rankJoined, c.String())
		return b
	}
	if !c.Valid() {
		b.err = invalidCombinatorErr(c)
		return b
	}
	l, err := left.Build()
	if err != nil {
		b.err = err
		return b
	}
	r, err := right.Build()
	if err != nil {
		b.err = err
		return b
	}
	b.joined = &joined{left: l, combinator: c, right: r}
	b.last = rankJoined
	return b
}

// Err returns the first rule violation recorded on the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build renders the selector. When the chain recorded a violation it returns
// an empty string and that error - no partial result is produced.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return b.render(), nil
}

// String implements fmt.Stringer rendering the fragments accepted so far. It
// ignores any recorded error and is meant for logs and debugging; use Build
// for validated output.
func (b *Builder) String() string {
	return b.render()
}

func (b *Builder) render() string {
	if b.joined != nil {
		return b.joined.left + " " + b.joined.combinator.String() + " " + b.joined.right
	}

	var sb strings.Builder
	sb.WriteString(b.element)
	if b.hasID {
		sb.WriteByte('#')
		sb.WriteString(b.id)
	}
	for _, c := range b.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	if b.hasAttribute {
		sb.WriteByte('[')
		sb.WriteString(b.attribute)
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
