/*
Package douceuradapter is a concrete implementation of interface qssom.StyleSheet.

QSS shares enough surface grammar with CSS that a CSS parser handles it:
selector preludes (including "::sub-control" and ":!state" qualifiers) are
opaque text up to the opening brace, and declarations are plain
property/value pairs. The douceur parser therefore does the lexing for us;
the QSS-specific interpretation of preludes happens in package qssom.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"os"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/style/qssom"
)

// QSSStyles is an adapter for interface qssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface qssom.StyleSheet.
type QSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into QSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *QSSStyles {
	sheet := &QSSStyles{*css}
	return sheet
}

// ParseString parses QSS source text into a stylesheet.
func ParseString(src string) (*QSSStyles, error) {
	c, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// ParseFile reads and parses a .qss file.
func ParseFile(path string) (*QSSStyles, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseString(string(src))
}

// Empty checks if this stylesheet contains any rules.
//
// Interface qssom.StyleSheet
func (sheet *QSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface qssom.StyleSheet
func (sheet *QSSStyles) AppendRules(other qssom.StyleSheet) {
	othercss := other.(*QSSStyles)
	for _, r := range othercss.css.Rules { // append every rule from other
		sheet.css.Rules = append(sheet.css.Rules, r)
	}
}

// Rules returns all the qualified rules of a stylesheet. At-rules have no
// meaning in QSS and are dropped.
//
// Interface qssom.StyleSheet
func (sheet *QSSStyles) Rules() []qssom.Rule {
	rules := make([]qssom.Rule, 0, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		if r.Kind == css.AtRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ qssom.StyleSheet = &QSSStyles{}

// Rule is an adapter for interface qssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.Join(strings.Fields(r.Prelude), " ")
}

// Properties returns the property keys of a rule, e.g. "border-radius".
// A key repeated within the rule block is listed once, at its first
// position; Value resolves it to the effective declaration.
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	seen := make(map[string]bool, len(decl))
	for _, d := range decl {
		if seen[d.Property] {
			continue
		}
		seen[d.Property] = true
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for given key with this rule, e.g. "6px".
// When the rule block repeats a key, the last declaration wins, as it does
// in the consuming style engine.
func (r Rule) Value(key string) style.Property {
	var value style.Property
	for _, d := range r.Declarations {
		if d.Property == key {
			value = style.Property(d.Value)
		}
	}
	return value
}

// IsImportant returns true if a style key is marked as important ("!").
// Like Value, it reflects the last declaration for the key.
func (r Rule) IsImportant(key string) bool {
	important := false
	for _, d := range r.Declarations {
		if d.Property == key {
			important = d.Important
		}
	}
	return important
}

var _ qssom.Rule = Rule{}
