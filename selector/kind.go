package selector

//go:generate go tool go-enum

// Kind of a single selector fragment. Declaration order is the canonical
// order in which fragments must appear inside a compound selector.
// ENUM(type, id, class, attribute, pseudo-class, pseudo-element)
type Kind int

// kindCount is kept next to the enum declaration - it must follow the last
// generated value.
const kindCount = int(KindPseudoElement) + 1

// unique reports whether at most one fragment of this kind is allowed in a
// compound selector.
func (k Kind) unique() bool {
	return k == KindType || k == KindId || k == KindPseudoElement
}
