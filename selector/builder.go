// Package selector builds CSS selector strings programmatically.
//
// A Builder accumulates fragments of a single compound selector (type, id,
// classes, attributes, pseudo-classes, pseudo-element) and renders them in
// canonical CSS order. Fragments must be appended in that order and the
// type, id and pseudo-element fragments may appear at most once; violations
// are recorded on the builder and surfaced by Stringify. Combine joins two
// already-built selectors with a combinator token into a Composite.
package selector

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateFragment is reported when a second type, id or
	// pseudo-element fragment is appended to the same builder.
	ErrDuplicateFragment = errors.New("type, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOrderViolation is reported when a fragment arrives after a fragment
	// of a later canonical rank has already been appended.
	ErrOrderViolation = errors.New("selector parts should be arranged in the following order: type, id, class, attribute, pseudo-class, pseudo-element")
)

// Selector is anything that can render itself into CSS selector text.
// Both Builder and Composite satisfy it, so Combine results nest.
type Selector interface {
	Stringify() (string, error)
}

// Builder accumulates fragments of one compound selector. The zero value is
// an empty selector ready for use. All append methods mutate the receiver
// and return it for chaining; after the first grammar violation the builder
// is poisoned and further appends are no-ops.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	slots [kindCount][]string
	err   error
}

// Type starts a new selector with a type (element name) fragment.
func Type(value string) *Builder { return new(Builder).Type(value) }

// ID starts a new selector with an id fragment.
func ID(value string) *Builder { return new(Builder).ID(value) }

// Class starts a new selector with a class fragment.
func Class(value string) *Builder { return new(Builder).Class(value) }

// Attribute starts a new selector with an attribute fragment. The value is
// the text between the brackets, e.g. `href$=".png"`.
func Attribute(value string) *Builder { return new(Builder).Attribute(value) }

// PseudoClass starts a new selector with a pseudo-class fragment.
func PseudoClass(value string) *Builder { return new(Builder).PseudoClass(value) }

// PseudoElement starts a new selector with a pseudo-element fragment.
func PseudoElement(value string) *Builder { return new(Builder).PseudoElement(value) }

// Type appends a type (element name) fragment, e.g. "div".
func (b *Builder) Type(value string) *Builder {
	return b.append(KindType, value)
}

// ID appends an id fragment, rendered with a leading '#'.
func (b *Builder) ID(value string) *Builder {
	return b.append(KindId, "#"+value)
}

// Class appends a class fragment, rendered with a leading '.'.
func (b *Builder) Class(value string) *Builder {
	return b.append(KindClass, "."+value)
}

// Attribute appends an attribute fragment, rendered wrapped in brackets.
func (b *Builder) Attribute(value string) *Builder {
	return b.append(KindAttribute, "["+value+"]")
}

// PseudoClass appends a pseudo-class fragment, rendered with a leading ':'.
func (b *Builder) PseudoClass(value string) *Builder {
	return b.append(KindPseudoClass, ":"+value)
}

// PseudoElement appends a pseudo-element fragment, rendered with a leading "::".
func (b *Builder) PseudoElement(value string) *Builder {
	return b.append(KindPseudoElement, "::"+value)
}

// append stores already-prefixed fragment text in the slot for k after
// checking uniqueness and canonical ordering. Only the first violation is
// kept.
func (b *Builder) append(k Kind, text string) *Builder {
	if b.err != nil {
		return b
	}
	if k.unique() && len(b.slots[k]) > 0 {
		b.err = fmt.Errorf("second %s fragment: %w", k, ErrDuplicateFragment)
		return b
	}
	// Once a later rank holds anything there is no way back.
	for r := int(k) + 1; r < kindCount; r++ {
		if len(b.slots[r]) > 0 {
			b.err = fmt.Errorf("%s fragment after %s: %w", k, Kind(r), ErrOrderViolation)
			return b
		}
	}
	b.slots[k] = append(b.slots[k], text)
	return b
}

// Err returns the first grammar violation recorded on the builder, if any.
func (b *Builder) Err() error {
	return b.err
}

// Stringify renders the accumulated fragments: slots in canonical order,
// entries within a slot in call order, no separators. It does not mutate
// the builder and may be called repeatedly.
func (b *Builder) Stringify() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	var sb strings.Builder
	for _, slot := range b.slots {
		for _, text := range slot {
			sb.WriteString(text)
		}
	}
	return sb.String(), nil
}

// Composite is a selector produced by Combine. It carries only the joined
// text captured at Combine time and is immutable; mutating an operand
// builder afterwards does not change it.
type Composite struct {
	text string
	err  error
}

// Stringify returns the joined selector text, or the first error carried
// over from an operand.
func (c *Composite) Stringify() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

// Combine joins two selectors with a combinator token:
//
//	left.Stringify() + " " + combinator + " " + right.Stringify()
//
// The combinator is passed through untouched - any token is accepted, not
// just the CSS ones (" ", ">", "+", "~"). Operands are rendered immediately,
// so the result is a snapshot of their state at call time. An operand error
// propagates to the returned Composite.
func Combine(left Selector, combinator string, right Selector) *Composite {
	lt, err := left.Stringify()
	if err != nil {
		return &Composite{err: err}
	}
	rt, err := right.Stringify()
	if err != nil {
		return &Composite{err: err}
	}
	return &Composite{text: lt + " " + combinator + " " + rt}
}
