/*
Package lint checks the asset-integrity properties of a Qt style sheet.

The consuming style engine ignores malformed or unrecognized rules
silently, so the only way to catch a broken theme is to vet the static
file: color literals must be 6-digit hex, url(...) icon references must
resolve to existing files, selectors must parse, and a re-serialized
sheet must be semantically equivalent to its source.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/style/qssom"
	"github.com/npillmayer/qss/style/qssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qss.lint'.
func tracer() tracing.Trace {
	return tracing.Select("qss.lint")
}

// Code is a machine-readable issue category.
type Code string

const (
	CodeParseError        Code = "PARSE_ERROR"
	CodeBadSelector       Code = "BAD_SELECTOR"
	CodeBadColor          Code = "BAD_COLOR"
	CodeMissingAsset      Code = "MISSING_ASSET"
	CodeUnknownWidget     Code = "UNKNOWN_WIDGET"
	CodeUnknownState      Code = "UNKNOWN_STATE"
	CodeUnknownSubControl Code = "UNKNOWN_SUBCONTROL"
	CodeUnknownProperty   Code = "UNKNOWN_PROPERTY"
	CodeShadowedValue     Code = "SHADOWED_VALUE"
)

// Severity of an issue. Errors break the asset contract, warnings mark
// rules the engine will silently drop, infos are cascade hygiene.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return "info"
}

// Issue is one finding of a lint run.
type Issue struct {
	Code     Code
	Severity Severity
	Selector string // selector context, if any
	Property string // property key context, if any
	Message  string
}

func (i Issue) String() string {
	loc := i.Selector
	if i.Property != "" {
		loc += " { " + i.Property + " }"
	}
	if loc != "" {
		loc = " at " + loc
	}
	return fmt.Sprintf("%s [%s]%s: %s", i.Severity, i.Code, loc, i.Message)
}

// Options parameterize a lint run.
type Options struct {
	IconDir      string // asset directory; empty skips existence checks
	IconDirToken string // placeholder in url(...) values, default "$ICON_DIR"
}

func (opts Options) token() string {
	if opts.IconDirToken == "" {
		return "$ICON_DIR"
	}
	return opts.IconDirToken
}

// CheckSource parses QSS source text and checks it. A parse failure is
// reported as a single PARSE_ERROR issue.
func CheckSource(src string, opts Options) []Issue {
	sheet, err := douceuradapter.ParseString(src)
	if err != nil {
		return []Issue{{
			Code:     CodeParseError,
			Severity: Error,
			Message:  err.Error(),
		}}
	}
	return Check(sheet, opts)
}

// CheckFile reads, parses and checks a .qss file.
func CheckFile(path string, opts Options) ([]Issue, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return CheckSource(string(src), opts), nil
}

// Check runs all rule-level checks over a parsed style sheet.
func Check(sheet qssom.StyleSheet, opts Options) []Issue {
	var issues []Issue
	lastAssignment := make(map[string]int) // selector+property → rule index
	for ri, rule := range sheet.Rules() {
		selectors := checkSelectors(rule, &issues)
		for _, key := range rule.Properties() {
			value := rule.Value(key)
			checkProperty(rule.Selector(), key, &issues)
			checkColors(rule.Selector(), key, value, &issues)
			checkAsset(rule.Selector(), key, value, opts, &issues)
			for _, sel := range selectors {
				slot := sel.String() + "\x00" + strings.ToLower(key)
				if prev, ok := lastAssignment[slot]; ok && prev != ri {
					issues = append(issues, Issue{
						Code:     CodeShadowedValue,
						Severity: Info,
						Selector: sel.String(),
						Property: key,
						Message:  "value is overwritten by a later rule for the same selector",
					})
				}
				lastAssignment[slot] = ri
			}
		}
	}
	tracer().Debugf("lint: %d issues", len(issues))
	return issues
}

// checkSelectors parses all selectors of a rule and vets their names
// against the widget vocabulary.
func checkSelectors(rule qssom.Rule, issues *[]Issue) []qssom.Selector {
	var parsed []qssom.Selector
	for _, one := range qssom.SplitGroup(rule.Selector()) {
		sel, err := qssom.ParseSelector(one)
		if err != nil {
			*issues = append(*issues, Issue{
				Code:     CodeBadSelector,
				Severity: Error,
				Selector: one,
				Message:  err.Error(),
			})
			continue
		}
		parsed = append(parsed, sel)
		for _, part := range sel.Parts {
			if !knownWidgets[part.Widget] {
				*issues = append(*issues, Issue{
					Code:     CodeUnknownWidget,
					Severity: Warning,
					Selector: one,
					Message:  fmt.Sprintf("unknown widget class %q", part.Widget),
				})
			}
			if part.SubControl != "" && !knownSubControls[part.SubControl] {
				*issues = append(*issues, Issue{
					Code:     CodeUnknownSubControl,
					Severity: Warning,
					Selector: one,
					Message:  fmt.Sprintf("unknown sub-control %q", part.SubControl),
				})
			}
			for _, st := range part.States {
				if !knownStates[st.Name] {
					*issues = append(*issues, Issue{
						Code:     CodeUnknownState,
						Severity: Warning,
						Selector: one,
						Message:  fmt.Sprintf("unknown pseudo-state %q", st.Name),
					})
				}
			}
		}
	}
	return parsed
}

func checkProperty(selector, key string, issues *[]Issue) {
	k := strings.ToLower(key)
	if style.GroupNameFromPropertyKey(k) != style.PGX {
		return
	}
	if strings.HasPrefix(k, "qproperty-") || extraProperties[k] {
		return
	}
	*issues = append(*issues, Issue{
		Code:     CodeUnknownProperty,
		Severity: Warning,
		Selector: selector,
		Property: key,
		Message:  fmt.Sprintf("unknown property %q", key),
	})
}

// checkColors vets every #… token of a value against the 6-digit hex
// pattern the theme is normalized to. Trailing punctuation is stripped
// so color stops inside function notation, as in
// "qlineargradient(... stop:0 #abb2bf, stop:1 #282c34)", check clean.
func checkColors(selector, key string, value style.Property, issues *[]Issue) {
	for _, field := range strings.Fields(value.String()) {
		if !strings.HasPrefix(field, "#") {
			continue
		}
		field = strings.TrimRight(field, ",);")
		if !style.Property(field).IsStrictHexColor() {
			*issues = append(*issues, Issue{
				Code:     CodeBadColor,
				Severity: Error,
				Selector: selector,
				Property: key,
				Message:  fmt.Sprintf("color literal %q is not 6-digit hex", field),
			})
		}
	}
}

// checkAsset resolves a url(...) reference against the icon directory.
func checkAsset(selector, key string, value style.Property, opts Options, issues *[]Issue) {
	if !value.IsURL() || opts.IconDir == "" {
		return
	}
	ref := value.URL()
	path := strings.ReplaceAll(ref, opts.token(), opts.IconDir)
	path = filepath.FromSlash(path)
	if _, err := os.Stat(path); err != nil {
		*issues = append(*issues, Issue{
			Code:     CodeMissingAsset,
			Severity: Error,
			Selector: selector,
			Property: key,
			Message:  fmt.Sprintf("icon %q does not resolve to an existing file", ref),
		})
	}
}

// HasErrors reports whether any issue has Error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == Error {
			return true
		}
	}
	return false
}

// RoundTrip parses a style sheet, re-serializes it canonically, parses
// the result again and compares the two merged rule-sets. A semantic
// difference flags an error.
func RoundTrip(src string) error {
	sheet, err := douceuradapter.ParseString(src)
	if err != nil {
		return err
	}
	first, err := qssom.Cascade(sheet)
	if err != nil {
		return err
	}
	again, err := douceuradapter.ParseString(qssom.Format(sheet))
	if err != nil {
		return fmt.Errorf("lint: canonical form does not re-parse: %w", err)
	}
	second, err := qssom.Cascade(again)
	if err != nil {
		return err
	}
	if !first.Equals(second) {
		return fmt.Errorf("lint: round-trip changed the rule-set (%d vs %d selectors)",
			first.Size(), second.Size())
	}
	return nil
}
