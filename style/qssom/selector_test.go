package qssom_test

import (
	"testing"

	"github.com/npillmayer/qss/style/qssom"
)

func TestSelectorDecompose(t *testing.T) {
	sel, err := qssom.ParseSelector("QScrollBar::handle:vertical:hover")
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.Parts) != 1 {
		t.Fatalf("expected a single simple selector, have %d", len(sel.Parts))
	}
	part := sel.Subject()
	if part.Widget != "QScrollBar" {
		t.Errorf("expected widget QScrollBar, have %q", part.Widget)
	}
	if part.SubControl != "handle" {
		t.Errorf("expected sub-control handle, have %q", part.SubControl)
	}
	if len(part.States) != 2 || part.States[0].Name != "vertical" || part.States[1].Name != "hover" {
		t.Errorf("expected states [vertical hover], have %v", part.States)
	}
}

func TestSelectorNegatedState(t *testing.T) {
	sel, err := qssom.ParseSelector("QTabBar::tab:hover:!selected")
	if err != nil {
		t.Fatal(err)
	}
	states := sel.Subject().States
	if len(states) != 2 {
		t.Fatalf("expected 2 states, have %d", len(states))
	}
	if !states[1].Negated || states[1].Name != "selected" {
		t.Errorf("expected negated 'selected' state, have %+v", states[1])
	}
}

func TestSelectorDescendant(t *testing.T) {
	sel, err := qssom.ParseSelector("QComboBox  QAbstractItemView")
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.Parts) != 2 {
		t.Fatalf("expected 2 parts, have %d", len(sel.Parts))
	}
	if sel.String() != "QComboBox QAbstractItemView" {
		t.Errorf("expected canonical serialization, have %q", sel.String())
	}
}

func TestSelectorChildCombinator(t *testing.T) {
	for _, src := range []string{"QComboBox > QLineEdit", "QComboBox>QLineEdit"} {
		sel, err := qssom.ParseSelector(src)
		if err != nil {
			t.Fatal(err)
		}
		if len(sel.Parts) != 2 {
			t.Fatalf("%q: expected 2 parts, have %d", src, len(sel.Parts))
		}
		if !sel.Parts[1].Child {
			t.Errorf("%q: expected the second part to be a child", src)
		}
		if sel.Parts[1].Widget != "QLineEdit" {
			t.Errorf("%q: expected widget QLineEdit, have %q", src, sel.Parts[1].Widget)
		}
		if sel.String() != "QComboBox > QLineEdit" {
			t.Errorf("%q: canonical form wrong: %q", src, sel.String())
		}
	}
}

func TestSelectorObjectName(t *testing.T) {
	sel, err := qssom.ParseSelector("QPushButton#okButton:hover")
	if err != nil {
		t.Fatal(err)
	}
	if sel.Subject().ObjectName != "okButton" {
		t.Errorf("expected object name okButton, have %q", sel.Subject().ObjectName)
	}
	if sel.String() != "QPushButton#okButton:hover" {
		t.Errorf("canonical form wrong: %q", sel.String())
	}
}

func TestSelectorErrors(t *testing.T) {
	for _, bad := range []string{"", "> QLabel", "QLabel >", "QLabel >> QMenu", "QScrollBar::", "QLabel:", "QPushButton#"} {
		if _, err := qssom.ParseSelector(bad); err == nil {
			t.Errorf("expected selector %q to flag an error, doesn't", bad)
		}
	}
}

func TestSpecificityOrdering(t *testing.T) {
	weigh := func(s string) int {
		sel, err := qssom.ParseSelector(s)
		if err != nil {
			t.Fatal(err)
		}
		return sel.Specificity()
	}
	if !(weigh("*") < weigh("QPushButton")) {
		t.Error("expected widget selector to outweigh the universal selector")
	}
	if !(weigh("QPushButton") < weigh("QPushButton:hover")) {
		t.Error("expected a pseudo-state to add weight")
	}
	if !(weigh("QScrollBar::handle") < weigh("QScrollBar::handle:hover")) {
		t.Error("expected state to outweigh bare sub-control")
	}
	if !(weigh("QPushButton:hover") < weigh("QPushButton#okButton")) {
		t.Error("expected object name to outweigh pseudo-states")
	}
}

func TestSplitGroup(t *testing.T) {
	group := qssom.SplitGroup(" QLineEdit:focus , QTextEdit:focus ")
	if len(group) != 2 {
		t.Fatalf("expected 2 selectors, have %d", len(group))
	}
	if group[0] != "QLineEdit:focus" || group[1] != "QTextEdit:focus" {
		t.Errorf("unexpected group split: %v", group)
	}
}
