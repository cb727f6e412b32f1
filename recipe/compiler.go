package recipe

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"selc/selector"
)

// Compiler turns recipes into selector strings. Builder rule violations
// (duplicate or out-of-order fragments, unknown combinators) surface as
// errors naming the offending recipe.
type Compiler struct {
	log *zap.Logger
}

// NewCompiler creates a compiler logging through the given logger.
func NewCompiler(log *zap.Logger) *Compiler {
	return &Compiler{log: log}
}

// builder routes recipe fields through the selector builder in rank order, so
// a well-formed recipe can never trip the ordering rule on its own.
func (c *Compiler) builder(r *Recipe) (*selector.Builder, error) {
	if r.Combine != nil {
		if r.hasFragments() {
			return nil, fmt.Errorf("combining recipe cannot carry fragment fields")
		}
		if r.Combine.Left == nil || r.Combine.Right == nil {
			return nil, fmt.Errorf("combining recipe must have both left and right sides")
		}
		left, err := c.builder(r.Combine.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.builder(r.Combine.Right)
		if err != nil {
			return nil, err
		}
		return selector.Combine(left, selector.Combinator(r.Combine.Combinator), right), nil
	}

	b := new(selector.Builder)
	if r.Element != "" {
		b.Element(r.Element)
	}
	if r.ID != "" {
		b.ID(r.ID)
	}
	for _, class := range r.Classes {
		b.Class(class)
	}
	if r.Attr != "" {
		b.Attr(r.Attr)
	}
	for _, p := range r.PseudoClasses {
		b.PseudoClass(p)
	}
	if r.PseudoElement != "" {
		b.PseudoElement(r.PseudoElement)
	}
	return b, nil
}

// Compile renders a single recipe.
func (c *Compiler) Compile(r *Recipe) (string, error) {
	b, err := c.builder(r)
	if err == nil {
		var s string
		if s, err = b.Build(); err == nil {
			return s, nil
		}
	}
	if len(r.Name) > 0 {
		return "", fmt.Errorf("recipe '%s': %w", r.Name, err)
	}
	return "", err
}

// Built is a compiled selector with its recipe name.
type Built struct {
	Name     string `json:"name" yaml:"name"`
	Selector string `json:"selector" yaml:"selector"`
}

// CompileAll renders every recipe in the book, accumulating per-recipe
// failures instead of stopping at the first one. Results come back in natural
// sort order of recipe names; unnamed recipes get generated names so output
// maps stay addressable.
func (c *Compiler) CompileAll(book *Book) ([]Built, error) {
	var (
		built []Built
		errs  error
	)
	for i := range book.Selectors {
		r := &book.Selectors[i]
		s, err := c.Compile(r)
		if err != nil {
			c.log.Warn("Skipping recipe", zap.Int("index", i), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}
		name := r.Name
		if len(name) == 0 {
			name = "selector-" + uuid.NewString()
		}
		c.log.Debug("Compiled recipe", zap.String("name", name), zap.String("selector", s))
		built = append(built, Built{Name: name, Selector: s})
	}
	sort.Slice(built, func(i, j int) bool {
		return natural.Less(built[i].Name, built[j].Name)
	})
	return built, errs
}
