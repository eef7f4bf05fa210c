/*
Package qssom provides an object model for Qt style sheets (QSS).

QSS is a CSS-like language: a flat list of rules, each mapping a widget
selector to a set of property assignments. Unlike CSS for HTML documents
there is no document tree to match against on our side; selector matching
and cascading against live widgets is the job of the consuming GUI toolkit.
What this package models is the rule list itself: selectors with their
pseudo-states and sub-controls, property maps, and the last-wins merge
order that makes two differently formatted style sheets comparable.

Stylesheet parsing is de-coupled by the interfaces StyleSheet and Rule.
A concrete implementation backed by the douceur CSS parser can be found
in sub-package douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package qssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'qss.om'.
func tracer() tracing.Trace {
	return tracing.Select("qss.om")
}
