// Package recipe loads YAML descriptions of CSS selectors and renders them
// through the selector builder.
package recipe

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssb/selector"
)

// Compound describes one compound selector. Fields are applied in canonical
// order, so a recipe cannot produce an order violation; uniqueness is
// enforced by the type system (single-valued fields).
type Compound struct {
	Name          string   `yaml:"name"`
	Type          string   `yaml:"type,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attributes    []string `yaml:"attributes,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`
}

// empty reports whether the compound describes no fragments at all.
func (c Compound) empty() bool {
	return c.Type == "" && c.ID == "" && len(c.Classes) == 0 &&
		len(c.Attributes) == 0 && len(c.PseudoClasses) == 0 && c.PseudoElement == ""
}

// build runs the described fragments through a fresh builder.
func (c Compound) build() *selector.Builder {
	b := new(selector.Builder)
	if c.Type != "" {
		b.Type(c.Type)
	}
	if c.ID != "" {
		b.ID(c.ID)
	}
	for _, class := range c.Classes {
		b.Class(class)
	}
	for _, attr := range c.Attributes {
		b.Attribute(attr)
	}
	for _, pc := range c.PseudoClasses {
		b.PseudoClass(pc)
	}
	if c.PseudoElement != "" {
		b.PseudoElement(c.PseudoElement)
	}
	return b
}

// Combined joins two named entries with a combinator token. Operands may
// name compounds or previously declared combined entries.
type Combined struct {
	Name       string `yaml:"name"`
	Left       string `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      string `yaml:"right"`
}

// Set is a full recipe file.
type Set struct {
	Compounds []Compound `yaml:"selectors"`
	Combined  []Combined `yaml:"combined,omitempty"`
}

// Load decodes a recipe from r. Unknown fields are rejected so typos in
// recipes fail loudly instead of silently dropping fragments.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var set Set
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to decode recipe: %w", err)
	}
	return &set, nil
}

// LoadFile reads and decodes the recipe file at path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open recipe file: %w", err)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("recipe '%s': %w", path, err)
	}
	return set, nil
}

// Rendered is one named selector rendered to text.
type Rendered struct {
	Name string
	Text string
}

// Renderer renders recipe sets into selector strings.
type Renderer struct {
	log *zap.Logger
}

// NewRenderer creates a recipe renderer.
func NewRenderer(log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{log: log.Named("recipe")}
}

// Render builds every entry of the set. Entries failing to build are left
// out of the result and their errors are accumulated - the caller gets every
// problem in the recipe at once, not just the first one. Results are
// returned in natural name order.
func (r *Renderer) Render(set *Set) ([]Rendered, error) {
	var errs error
	built := make(map[string]selector.Selector, len(set.Compounds)+len(set.Combined))

	record := func(name string, sel selector.Selector) {
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("recipe entry without a name (selector %q)", mustText(sel)))
			return
		}
		if _, dup := built[name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate recipe entry name '%s'", name))
			return
		}
		built[name] = sel
	}

	for _, c := range set.Compounds {
		if c.empty() {
			errs = multierr.Append(errs, fmt.Errorf("selector '%s' describes no fragments", c.Name))
			continue
		}
		b := c.build()
		if err := b.Err(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector '%s': %w", c.Name, err))
			continue
		}
		record(c.Name, b)
	}

	for _, j := range set.Combined {
		if j.Combinator == "" {
			errs = multierr.Append(errs, fmt.Errorf("combined selector '%s' is missing a combinator", j.Name))
			continue
		}
		left, ok := built[j.Left]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("combined selector '%s' references unknown entry '%s'", j.Name, j.Left))
			continue
		}
		right, ok := built[j.Right]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("combined selector '%s' references unknown entry '%s'", j.Name, j.Right))
			continue
		}
		record(j.Name, selector.Combine(left, j.Combinator, right))
	}

	out := make([]Rendered, 0, len(built))
	for name, sel := range built {
		text, err := sel.Stringify()
		if err != nil {
			// cannot happen - failing builders are never recorded
			errs = multierr.Append(errs, fmt.Errorf("selector '%s': %w", name, err))
			continue
		}
		r.log.Debug("Rendered selector", zap.String("name", name), zap.String("selector", text))
		out = append(out, Rendered{Name: name, Text: text})
	}

	sort.Slice(out, func(i, k int) bool {
		return natural.Less(out[i].Name, out[k].Name)
	})
	return out, errs
}

// mustText renders sel ignoring errors, for use in error messages only.
func mustText(sel selector.Selector) string {
	text, _ := sel.Stringify()
	return text
}
