package qssom

import (
	"github.com/npillmayer/qss/style"
)

// RuleSet is the merged view of a style sheet: an association from
// canonical selectors to property maps. Rules repeating a selector later
// in the sheet overwrite earlier property values (last-wins cascade);
// matching precedence between different selectors is the consuming
// toolkit's business and not resolved here.
//
// Two style sheets which merge to equal rule-sets are semantically
// equivalent, whatever their formatting. This is the equality used by
// round-trip checks.
type RuleSet struct {
	entries map[string]*ruleEntry
	order   []string // first-seen order, for stable iteration
}

type ruleEntry struct {
	selector Selector
	props    *style.PropertyMap
}

// NewRuleSet creates an empty rule-set.
func NewRuleSet() *RuleSet {
	return &RuleSet{entries: make(map[string]*ruleEntry)}
}

// Cascade merges all rules of a style sheet into a rule-set. Selector
// groups ("QLineEdit, QTextEdit { … }") are split into independent
// entries. Selectors which do not parse flag an error and abort the merge.
func Cascade(sheet StyleSheet) (*RuleSet, error) {
	rs := NewRuleSet()
	if sheet == nil {
		return rs, nil
	}
	for _, rule := range sheet.Rules() {
		for _, one := range SplitGroup(rule.Selector()) {
			sel, err := ParseSelector(one)
			if err != nil {
				return nil, err
			}
			for _, key := range rule.Properties() {
				rs.Add(sel, key, rule.Value(key))
			}
		}
	}
	tracer().Debugf("cascaded stylesheet into %d rule-set entries", rs.Size())
	return rs, nil
}

// Add sets a property value for a selector, overwriting an existing value.
func (rs *RuleSet) Add(sel Selector, key string, value style.Property) {
	canon := sel.String()
	e, ok := rs.entries[canon]
	if !ok {
		e = &ruleEntry{selector: sel, props: style.NewPropertyMap()}
		rs.entries[canon] = e
		rs.order = append(rs.order, canon)
	}
	e.props.Add(key, value)
}

// Size returns the number of distinct selectors.
func (rs *RuleSet) Size() int {
	if rs == nil {
		return 0
	}
	return len(rs.entries)
}

// Selectors returns all selectors in first-seen order.
func (rs *RuleSet) Selectors() []Selector {
	sels := make([]Selector, 0, len(rs.order))
	for _, canon := range rs.order {
		sels = append(sels, rs.entries[canon].selector)
	}
	return sels
}

// Properties returns the property map for a selector, or nil if the
// rule-set has no entry for it.
func (rs *RuleSet) Properties(sel Selector) *style.PropertyMap {
	if rs == nil {
		return nil
	}
	e, ok := rs.entries[sel.String()]
	if !ok {
		return nil
	}
	return e.props
}

// Lookup returns a single property value for a selector.
func (rs *RuleSet) Lookup(sel Selector, key string) (style.Property, bool) {
	props := rs.Properties(sel)
	if props == nil {
		return style.NullStyle, false
	}
	return props.Property(key)
}

// Equals compares two rule-sets for the same selector → property-map
// associations. Iteration order does not participate in equality.
func (rs *RuleSet) Equals(other *RuleSet) bool {
	if rs.Size() != other.Size() {
		return false
	}
	for canon, e := range rs.entries {
		o, ok := other.entries[canon]
		if !ok {
			return false
		}
		if !e.props.Equals(o.props) {
			return false
		}
	}
	return true
}
