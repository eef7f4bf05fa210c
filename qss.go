/*
Package qss is a toolkit for the Qt style sheets (QSS) of a desktop
application: it ships the application's dark theme as an embedded asset
and provides the machinery around it: parsing, canonical serialization,
asset-integrity checks and theme resolution.

The interesting packages are:

  - style: property values, property maps, lengths and colors
  - style/qssom: selectors and the rule-set object model
  - style/qssom/douceuradapter: the douceur-backed parser binding
  - theme: the embedded dark theme, palettes and overrides
  - lint: asset-integrity checks for theme files
  - qssdbg: debugging dumps of rule structures

This root package only bundles the common entry points.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package qss

import (
	"github.com/npillmayer/qss/style/qssom"
	"github.com/npillmayer/qss/style/qssom/douceuradapter"
	"github.com/npillmayer/qss/theme"
)

// Parse parses QSS source text into a style sheet.
func Parse(src string) (qssom.StyleSheet, error) {
	return douceuradapter.ParseString(src)
}

// DarkTheme resolves the built-in dark theme for an icon directory.
// The returned theme's Text is ready for the toolkit's style engine.
func DarkTheme(iconDir string) (*theme.Theme, error) {
	return theme.Dark(theme.Options{IconDir: iconDir})
}
