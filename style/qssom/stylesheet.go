package qssom

import "github.com/npillmayer/qss/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of QSS-stylesheets from the
// rule-set model, we introduce an interface for style sheets. Clients
// will have to provide a concrete implementation of this interface
// (e.g., see package douceuradapter).
//
// Having this interface imposes a performance hit. However, this
// implementation of QSS handling will never trade modularity and
// clarity for performance. Loading a theme happens once per application
// session; nothing here is on a hot path.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "border-radius"
	Value(string) style.Property // property value for key, e.g. "6px"
	IsImportant(string) bool     // is property key marked as important?
}
