// Package docpath derives CSS selectors for elements of an XML/XHTML
// document. It reads the element tree only - no selector matching and no CSS
// parsing happens here.
package docpath

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"selc/selector"
)

// Deriver builds a selector for a document element from its ancestor chain.
type Deriver struct {
	// UseIDs stops the ancestor walk at the first element carrying an id
	// attribute - an id anchors the selector well enough.
	UseIDs bool
	// UseClasses incorporates class attributes into every step.
	UseClasses bool

	log *zap.Logger
}

// NewDeriver creates a deriver logging through the given logger.
func NewDeriver(useIDs, useClasses bool, log *zap.Logger) *Deriver {
	return &Deriver{UseIDs: useIDs, UseClasses: useClasses, log: log}
}

// step builds the simple selector for a single element.
func (d *Deriver) step(e *etree.Element) *selector.Builder {
	b := selector.Element(e.Tag)
	if d.UseIDs {
		if id := e.SelectAttrValue("id", ""); id != "" {
			b.ID(id)
		}
	}
	if d.UseClasses {
		for _, class := range strings.Fields(e.SelectAttrValue("class", "")) {
			b.Class(class)
		}
	}
	return b
}

// FromElement walks from the document root down to e building one simple
// selector per element and folding the chain with the child combinator. The
// result is a nested combined builder rendering e.g. "body > div#page > p".
// A nil or synthetic tag-less element yields an empty builder.
func (d *Deriver) FromElement(e *etree.Element) *selector.Builder {
	var steps []*selector.Builder
	for cur := e; cur != nil && cur.Tag != ""; cur = cur.Parent() {
		s := d.step(cur)
		steps = append(steps, s)
		if d.UseIDs && cur.SelectAttrValue("id", "") != "" {
			// anchored, no need to walk further up
			break
		}
	}
	if len(steps) == 0 {
		return new(selector.Builder)
	}

	// steps were collected bottom-up
	b := steps[len(steps)-1]
	for i := len(steps) - 2; i >= 0; i-- {
		b = selector.Combine(b, selector.Child, steps[i])
	}
	d.log.Debug("Derived selector", zap.String("element", e.Tag), zap.Stringer("selector", b))
	return b
}

// Resolve finds the element at the given etree path and returns its derived
// selector text.
func (d *Deriver) Resolve(doc *etree.Document, path string) (string, error) {
	e := doc.FindElement(path)
	if e == nil {
		return "", fmt.Errorf("no element found at path '%s'", path)
	}
	return d.FromElement(e).Build()
}
