package qssom

import (
	"io"
	"strings"
)

// Serialize writes a style sheet in canonical form: one rule per selector
// group, 4-space indented declarations, a blank line between rules.
// Rule order and declaration order follow the source; the canonical form
// of a sheet therefore round-trips to an equal rule-set (see
// RuleSet.Equals), though not necessarily to byte-equal text.
func Serialize(sheet StyleSheet, w io.Writer) error {
	for i, rule := range sheet.Rules() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := serializeRule(rule, w); err != nil {
			return err
		}
	}
	return nil
}

// Format returns the canonical text of a style sheet.
func Format(sheet StyleSheet) string {
	var b strings.Builder
	_ = Serialize(sheet, &b) // strings.Builder does not error
	return b.String()
}

func serializeRule(rule Rule, w io.Writer) error {
	var b strings.Builder
	b.WriteString(strings.Join(SplitGroup(rule.Selector()), ",\n"))
	b.WriteString(" {\n")
	for _, key := range rule.Properties() {
		b.WriteString("    ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(rule.Value(key).String())
		if rule.IsImportant(key) {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
