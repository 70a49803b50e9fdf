package selector_test

import (
	"errors"
	"strings"
	"testing"

	"cssb/selector"
)

func stringify(t *testing.T, s selector.Selector) string {
	t.Helper()
	text, err := s.Stringify()
	if err != nil {
		t.Fatalf("Stringify() error = %v", err)
	}
	return text
}

func TestBuilder_SingleFragments(t *testing.T) {
	tests := []struct {
		name string
		sel  selector.Selector
		want string
	}{
		{"type", selector.Type("div"), "div"},
		{"id", selector.ID("nav-bar"), "#nav-bar"},
		{"class", selector.Class("warning"), ".warning"},
		{"attribute", selector.Attribute("data-id"), "[data-id]"},
		{"pseudo-class", selector.PseudoClass("invalid"), ":invalid"},
		{"pseudo-element", selector.PseudoElement("first-letter"), "::first-letter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stringify(t, tt.sel); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_IDWithClasses(t *testing.T) {
	got := stringify(t, selector.ID("main").Class("container").Class("editable"))
	if got != "#main.container.editable" {
		t.Errorf("Stringify() = %q, want %q", got, "#main.container.editable")
	}
}

func TestBuilder_TypeAttributePseudoClass(t *testing.T) {
	got := stringify(t, selector.Type("a").Attribute(`href$=".png"`).PseudoClass("focus"))
	if got != `a[href$=".png"]:focus` {
		t.Errorf("Stringify() = %q, want %q", got, `a[href$=".png"]:focus`)
	}
}

func TestBuilder_AllKinds(t *testing.T) {
	sel := selector.Type("div").
		ID("main").
		Class("container").
		Class("draggable").
		Attribute(`id^="le"`).
		PseudoClass("hover").
		PseudoElement("before")
	want := `div#main.container.draggable[id^="le"]:hover::before`
	if got := stringify(t, sel); got != want {
		t.Errorf("Stringify() = %q, want %q", got, want)
	}
}

func TestBuilder_RepeatableStringify(t *testing.T) {
	sel := selector.Type("li").Class("active")
	first := stringify(t, sel)
	second := stringify(t, sel)
	if first != second {
		t.Errorf("repeated Stringify() = %q, first was %q", second, first)
	}
}

func TestBuilder_DuplicateFragments(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Builder
	}{
		{"id twice", selector.ID("a").ID("b")},
		{"type twice", selector.Type("div").Type("span")},
		{"pseudo-element twice", selector.PseudoElement("after").PseudoElement("before")},
		// uniqueness is checked before ordering, even with appends in between
		{"type twice with class between", selector.Type("div").Class("draggable").Type("p")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.sel.Stringify(); !errors.Is(err, selector.ErrDuplicateFragment) {
				t.Errorf("Stringify() error = %v, want ErrDuplicateFragment", err)
			}
		})
	}
}

func TestBuilder_OrderViolations(t *testing.T) {
	tests := []struct {
		name string
		sel  *selector.Builder
	}{
		{"id after attribute", selector.Type("div").Attribute("x").ID("main")},
		{"type after id", selector.ID("main").Type("div")},
		{"class after pseudo-class", selector.PseudoClass("hover").Class("active")},
		{"attribute after pseudo-element", selector.PseudoElement("before").Attribute("data-id")},
		{"id after class", selector.Class("container").ID("main")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.sel.Stringify(); !errors.Is(err, selector.ErrOrderViolation) {
				t.Errorf("Stringify() error = %v, want ErrOrderViolation", err)
			}
		})
	}
}

func TestBuilder_ErrorMessages(t *testing.T) {
	_, err := selector.ID("a").ID("b").Stringify()
	if err == nil || !strings.Contains(err.Error(), "should not occur more than one time") {
		t.Errorf("duplicate error = %v, want occurrence statement", err)
	}

	_, err = selector.Class("x").Type("div").Stringify()
	if err == nil || !strings.Contains(err.Error(), "type, id, class, attribute, pseudo-class, pseudo-element") {
		t.Errorf("order error = %v, want canonical order statement", err)
	}
}

func TestBuilder_StickyError(t *testing.T) {
	sel := selector.Type("div").Attribute("x").ID("main")
	if sel.Err() == nil {
		t.Fatal("Err() = nil after order violation")
	}

	// later legal appends must not repair or replace the first error
	sel.Class("late").PseudoClass("hover")
	if _, err := sel.Stringify(); !errors.Is(err, selector.ErrOrderViolation) {
		t.Errorf("Stringify() after more appends error = %v, want ErrOrderViolation", err)
	}
}

func TestBuilder_IndependentInstances(t *testing.T) {
	first := selector.Type("p")
	second := selector.Type("p")
	first.Class("lead")

	if got := stringify(t, second); got != "p" {
		t.Errorf("second builder Stringify() = %q, want %q", got, "p")
	}
}

func TestCombine(t *testing.T) {
	got := stringify(t, selector.Combine(
		selector.Type("p").PseudoClass("focus"),
		"+",
		selector.Type("p").PseudoClass("hover"),
	))
	if got != "p:focus + p:hover" {
		t.Errorf("Combine() = %q, want %q", got, "p:focus + p:hover")
	}
}

func TestCombine_Nested(t *testing.T) {
	inner := selector.Combine(selector.Type("div").ID("main"), ">", selector.Type("ul"))
	outer := selector.Combine(inner, " ", selector.Type("li").Class("active"))

	want := "div#main > ul   li.active"
	if got := stringify(t, outer); got != want {
		t.Errorf("nested Combine() = %q, want %q", got, want)
	}
}

func TestCombine_OpaqueCombinator(t *testing.T) {
	got := stringify(t, selector.Combine(selector.Type("a"), "~~", selector.Type("b")))
	if got != "a ~~ b" {
		t.Errorf("Combine() = %q, want %q", got, "a ~~ b")
	}
}

func TestCombine_SnapshotsOperands(t *testing.T) {
	left := selector.Type("div")
	combined := selector.Combine(left, ">", selector.ID("x"))

	// mutating the operand afterwards must not change the composite
	left.Class("later")

	if got := stringify(t, combined); got != "div > #x" {
		t.Errorf("Combine() after operand mutation = %q, want %q", got, "div > #x")
	}
	if got := stringify(t, left); got != "div.later" {
		t.Errorf("operand Stringify() = %q, want %q", got, "div.later")
	}
}

func TestCombine_PropagatesOperandError(t *testing.T) {
	bad := selector.ID("a").ID("b")
	combined := selector.Combine(bad, ">", selector.Type("div"))

	if _, err := combined.Stringify(); !errors.Is(err, selector.ErrDuplicateFragment) {
		t.Errorf("Combine() with bad operand error = %v, want ErrDuplicateFragment", err)
	}
}

func TestKind_Names(t *testing.T) {
	want := []string{"type", "id", "class", "attribute", "pseudo-class", "pseudo-element"}
	got := selector.KindNames()
	if len(got) != len(want) {
		t.Fatalf("KindNames() returned %d names, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("KindNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	k, err := selector.ParseKind("pseudo-class")
	if err != nil {
		t.Fatalf("ParseKind() error = %v", err)
	}
	if k != selector.KindPseudoClass {
		t.Errorf("ParseKind() = %v, want %v", k, selector.KindPseudoClass)
	}
	if _, err := selector.ParseKind("bogus"); err == nil {
		t.Error("ParseKind(bogus) expected error")
	}
}
