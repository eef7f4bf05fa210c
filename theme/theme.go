/*
Package theme ships the dark Qt style sheet of the application and
resolves it for consumption by the host toolkit.

The style sheet is a static asset: a flat list of selector blocks with
literal hex colors and url(...) icon references under the $ICON_DIR
placeholder. Resolving a theme substitutes the placeholder with a real
icon directory, optionally re-colors semantic palette roles, and hands
back both the final stylesheet text (for QWidget.setStyleSheet and
friends) and the merged rule-set view (for tooling).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package theme

import (
	_ "embed"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/qss/style"
	"github.com/npillmayer/qss/style/qssom"
	"github.com/npillmayer/qss/style/qssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qss.theme'.
func tracer() tracing.Trace {
	return tracing.Select("qss.theme")
}

//go:embed assets/dark.qss
var darkQSS string

// IconDirToken is the asset-directory placeholder used by the built-in
// theme. Consumers substitute it with an absolute path at load time.
const IconDirToken = "$ICON_DIR"

// Theme is a resolved style sheet.
type Theme struct {
	Text    string           // stylesheet text ready for the toolkit
	Sheet   qssom.StyleSheet // parsed rules in source order
	Rules   *qssom.RuleSet   // merged selector → property-map view
	Palette Palette          // effective palette
}

// Options parameterize theme resolution. The zero value resolves the
// built-in theme unchanged, with the $ICON_DIR placeholder left in place.
type Options struct {
	IconDir string  // substituted for $ICON_DIR; slashes are normalized
	Palette Palette // role overrides merged over Default()
}

// Source returns the raw embedded theme source, placeholders included.
func Source() string {
	return darkQSS
}

// Dark resolves the built-in dark theme.
func Dark(opts Options) (*Theme, error) {
	if err := opts.Palette.Validate(); err != nil {
		return nil, err
	}
	pal := Default().MergedWith(opts.Palette)
	src := substituteColors(darkQSS, Default(), pal)
	if opts.IconDir != "" {
		src = strings.ReplaceAll(src, IconDirToken, filepath.ToSlash(opts.IconDir))
	}
	sheet, err := douceuradapter.ParseString(src)
	if err != nil {
		return nil, err
	}
	rules, err := qssom.Cascade(sheet)
	if err != nil {
		return nil, err
	}
	tracer().Infof("resolved dark theme: %d selectors", rules.Size())
	return &Theme{Text: src, Sheet: sheet, Rules: rules, Palette: pal}, nil
}

// substituteColors rewrites color literals whose role changed between the
// base and the effective palette. Palette hex values are unique per role,
// so plain text replacement is unambiguous. All roles are substituted in
// a single pass; an override that happens to equal another role's base
// value must not be rewritten a second time.
func substituteColors(src string, base, effective Palette) string {
	var pairs []string
	for _, role := range base.Roles() {
		from, to := base[role], effective[role]
		if from == to {
			continue
		}
		pairs = append(pairs, from, to)
	}
	if len(pairs) == 0 {
		return src
	}
	return strings.NewReplacer(pairs...).Replace(src)
}

// Icons returns the icon file names the theme references, relative to the
// asset directory, sorted and de-duplicated. The inventory is computed
// from the unresolved source so it is independent of any icon-dir
// substitution.
func Icons() ([]string, error) {
	sheet, err := douceuradapter.ParseString(darkQSS)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, rule := range sheet.Rules() {
		for _, key := range rule.Properties() {
			v := rule.Value(key)
			if !v.IsURL() {
				continue
			}
			name := strings.TrimPrefix(v.URL(), IconDirToken+"/")
			seen[name] = true
		}
	}
	icons := make([]string, 0, len(seen))
	for name := range seen {
		icons = append(icons, name)
	}
	sort.Strings(icons)
	return icons, nil
}

// RuleFor is a convenience lookup: the property map the theme associates
// with a selector, or nil.
func (t *Theme) RuleFor(selector string) *style.PropertyMap {
	sel, err := qssom.ParseSelector(selector)
	if err != nil {
		return nil
	}
	return t.Rules.Properties(sel)
}
