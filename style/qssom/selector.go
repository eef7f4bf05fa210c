package qssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Selector is a parsed QSS selector: a chain of simple selectors separated
// by descendant (whitespace) or child (">") combinators, e.g.
//
//	QComboBox QAbstractItemView
//	QScrollBar::handle:vertical:hover
//
// The subject of the selector, i.e. the widget the rule ultimately styles,
// is the last part of the chain.
type Selector struct {
	Parts []SimpleSelector
}

// SimpleSelector is one link of a selector chain: a widget class with an
// optional object name, an optional sub-control and zero or more
// pseudo-states.
type SimpleSelector struct {
	Widget     string  // widget class name, "*" for the universal selector
	ObjectName string  // from "QPushButton#okButton", usually empty
	SubControl string  // from "::handle" etc., usually empty
	States     []State // pseudo-states in source order
	Child      bool    // preceded by a ">" combinator
}

// State is a pseudo-state qualifier, possibly negated, as in
// ":hover:!selected".
type State struct {
	Name    string
	Negated bool
}

// ParseSelector parses a single QSS selector (no comma groups; split those
// beforehand, see SplitGroup). The child combinator is recognized with or
// without surrounding whitespace ("QComboBox > QLineEdit" and
// "QComboBox>QLineEdit" are the same selector).
func ParseSelector(sel string) (Selector, error) {
	var s Selector
	child := false
	for _, tok := range strings.Fields(strings.ReplaceAll(sel, ">", " > ")) {
		if tok == ">" {
			if len(s.Parts) == 0 {
				return Selector{}, fmt.Errorf("qssom: selector %q starts with combinator", sel)
			}
			if child {
				return Selector{}, fmt.Errorf("qssom: doubled combinator in %q", sel)
			}
			child = true
			continue
		}
		part, err := parseSimpleSelector(tok)
		if err != nil {
			return Selector{}, err
		}
		part.Child = child
		child = false
		s.Parts = append(s.Parts, part)
	}
	if child {
		return Selector{}, fmt.Errorf("qssom: selector %q ends with combinator", sel)
	}
	if len(s.Parts) == 0 {
		return Selector{}, fmt.Errorf("qssom: empty selector")
	}
	return s, nil
}

// SplitGroup splits a rule prelude on top-level commas into the
// independent selectors of a selector group.
func SplitGroup(prelude string) []string {
	var group []string
	for _, sel := range strings.Split(prelude, ",") {
		sel = strings.TrimSpace(sel)
		if sel != "" {
			group = append(group, sel)
		}
	}
	return group
}

func parseSimpleSelector(tok string) (SimpleSelector, error) {
	part := SimpleSelector{}
	rest := tok
	// widget class (and optional #objectName) up to the first colon
	head := rest
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		head, rest = rest[:i], rest[i:]
	} else {
		rest = ""
	}
	if j := strings.IndexByte(head, '#'); j >= 0 {
		part.Widget, part.ObjectName = head[:j], head[j+1:]
		if part.ObjectName == "" {
			return SimpleSelector{}, fmt.Errorf("qssom: empty object name in %q", tok)
		}
	} else {
		part.Widget = head
	}
	if part.Widget == "" {
		part.Widget = "*"
	}
	// pseudo-state and sub-control qualifiers
	for rest != "" {
		if strings.HasPrefix(rest, "::") {
			name := rest[2:]
			if i := strings.IndexByte(name, ':'); i >= 0 {
				name, rest = name[:i], name[i:]
			} else {
				rest = ""
			}
			if name == "" {
				return SimpleSelector{}, fmt.Errorf("qssom: empty sub-control in %q", tok)
			}
			if part.SubControl != "" {
				return SimpleSelector{}, fmt.Errorf("qssom: more than one sub-control in %q", tok)
			}
			part.SubControl = name
			continue
		}
		name := rest[1:]
		if i := strings.IndexByte(name, ':'); i >= 0 {
			name, rest = name[:i], name[i:]
		} else {
			rest = ""
		}
		st := State{Name: name}
		if strings.HasPrefix(st.Name, "!") {
			st.Name = st.Name[1:]
			st.Negated = true
		}
		if st.Name == "" {
			return SimpleSelector{}, fmt.Errorf("qssom: empty pseudo-state in %q", tok)
		}
		part.States = append(part.States, st)
	}
	return part, nil
}

// String re-serializes the selector. The output is canonical, i.e. free of
// the whitespace variations of the source text.
func (s Selector) String() string {
	var b strings.Builder
	for i, part := range s.Parts {
		if i > 0 {
			if part.Child {
				b.WriteString(" > ")
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(part.String())
	}
	return b.String()
}

func (part SimpleSelector) String() string {
	var b strings.Builder
	b.WriteString(part.Widget)
	if part.ObjectName != "" {
		b.WriteByte('#')
		b.WriteString(part.ObjectName)
	}
	if part.SubControl != "" {
		b.WriteString("::")
		b.WriteString(part.SubControl)
	}
	for _, st := range part.States {
		b.WriteByte(':')
		if st.Negated {
			b.WriteByte('!')
		}
		b.WriteString(st.Name)
	}
	return b.String()
}

// Subject returns the simple selector the rule ultimately applies to.
func (s Selector) Subject() SimpleSelector {
	if len(s.Parts) == 0 {
		return SimpleSelector{Widget: "*"}
	}
	return s.Parts[len(s.Parts)-1]
}

// Specificity calculates the precedence weight of a selector, following
// the CSS2 counting scheme Qt uses: object names weigh like IDs,
// pseudo-states like classes, widget names and sub-controls like element
// types. Higher values win; for equal values, source order decides (which
// is the rule-set merge order).
func (s Selector) Specificity() int {
	a, b, c := 0, 0, 0
	for _, part := range s.Parts {
		if part.ObjectName != "" {
			a++
		}
		b += len(part.States)
		if part.Widget != "*" {
			c++
		}
		if part.SubControl != "" {
			c++
		}
	}
	return a*0x10000 + b*0x100 + c
}
