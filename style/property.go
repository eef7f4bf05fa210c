package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'qss.style'
func tracer() tracing.Trace {
	return tracing.Select("qss.style")
}

// Property is a raw value for a QSS property. For example, with
//
//	background-color: #313244
//
// a property value of "#313244" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsNone denotes a property explicitly set to "none", which switches a
// decoration off (e.g. "background: none" on scrollbar pages).
func (p Property) IsNone() bool {
	return strings.EqualFold(string(p), "none")
}

// IsTransparent denotes the "transparent" color keyword.
func (p Property) IsTransparent() bool {
	return strings.EqualFold(string(p), "transparent")
}

// IsURL checks wether a property value is an icon reference of the form
// "url(path)". Use URL() to extract the path.
func (p Property) IsURL() bool {
	v := strings.TrimSpace(string(p))
	return strings.HasPrefix(v, "url(") && strings.HasSuffix(v, ")")
}

// URL extracts the path argument from a "url(...)" property value.
// Surrounding single or double quotes are stripped. For values which are
// not URL references, URL returns the empty string.
func (p Property) URL() string {
	if !p.IsURL() {
		return ""
	}
	v := strings.TrimSpace(string(p))
	v = strings.TrimSuffix(strings.TrimPrefix(v, "url("), ")")
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `"'`)
	return v
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- QSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// QSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	Parent    *PropertyGroup
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	return r
}

// IsSet is a predicate wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Property keys are always converted to lower case; values keep their
// spelling, as icon paths are case sensitive on most platforms.
func (pg *PropertyGroup) Set(key string, p Property) {
	key = strings.ToLower(key)
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	key = strings.ToLower(key)
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	_, exists := pg.propsDict[key]
	if !exists {
		pg.propsDict[key] = p
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//
//	GroupNameFromPropertyKey("border-top-color") => "Border"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		if strings.HasPrefix(key, "qproperty-") {
			return PGX
		}
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGBox       = "Box"
	PGBorder    = "Border"
	PGColor     = "Color"
	PGIcon      = "Icon"
	PGFont      = "Font"
	PGSelection = "Selection"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin":                     PGBox, // Box
	"margin-top":                 PGBox,
	"margin-left":                PGBox,
	"margin-right":               PGBox,
	"margin-bottom":              PGBox,
	"padding":                    PGBox,
	"padding-top":                PGBox,
	"padding-left":               PGBox,
	"padding-right":              PGBox,
	"padding-bottom":             PGBox,
	"spacing":                    PGBox,
	"width":                      PGBox,
	"height":                     PGBox,
	"min-width":                  PGBox,
	"min-height":                 PGBox,
	"max-width":                  PGBox,
	"max-height":                 PGBox,
	"subcontrol-origin":          PGBox,
	"subcontrol-position":        PGBox,
	"border":                     PGBorder, // Border
	"border-top":                 PGBorder,
	"border-left":                PGBorder,
	"border-right":               PGBorder,
	"border-bottom":              PGBorder,
	"border-color":               PGBorder,
	"border-style":               PGBorder,
	"border-width":               PGBorder,
	"border-radius":              PGBorder,
	"border-top-color":           PGBorder,
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"outline":                    PGBorder,
	"color":                      PGColor, // Color
	"background":                 PGColor,
	"background-color":           PGColor,
	"alternate-background-color": PGColor,
	"gridline-color":             PGColor,
	"image":                      PGIcon, // Icon
	"icon":                       PGIcon,
	"icon-size":                  PGIcon,
	"font":                       PGFont, // Font
	"font-family":                PGFont,
	"font-size":                  PGFont,
	"font-style":                 PGFont,
	"font-weight":                PGFont,
	"text-align":                 PGFont,
	"selection-color":            PGSelection, // Selection
	"selection-background-color": PGSelection,
	"show-decoration-selected":   PGSelection,
	"placeholder-text-color":     PGSelection,
}

// SplitCompoundProperty splits up a shorthand property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("padding", "3px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "3px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "3px"
//
// The QSS box shorthands follow the CSS distribution logic for 1 to 4
// values. The "border" shorthand splits into width/style/color instead.
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "border":
		return feazeBorder(fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// feazeBorder splits "border: <width> <style> <color>" into the three
// border sub-properties, applied to all four sides.
func feazeBorder(fields []string) ([]KeyValue, error) {
	if len(fields) != 3 {
		return nil, fmt.Errorf("expecting 3 values for border, have %d", len(fields))
	}
	r := make([]KeyValue, 0, 12)
	sub := [3]string{"width", "style", "color"}
	for i, suffix := range sub {
		for _, dir := range fourDirs {
			r = append(r, KeyValue{p("border", suffix, dir), Property(fields[i])})
		}
	}
	return r, nil
}

// CSS logic to distribute individual values from compound shorthands is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-right", "bottom-right", "bottom-left", "top-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds QSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a widget selector: a rule-set entry
// links to a property map, which contains zero or more property groups.
type PropertyMap struct {
	// As QSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, v := range pmap.m {
		s += v.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Each walks all properties of the map in unspecified order.
func (pmap *PropertyMap) Each(f func(key string, value Property)) {
	if pmap == nil {
		return
	}
	for _, group := range pmap.m {
		for k, v := range group.propsDict {
			f(k, v)
		}
	}
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
//
// If the property map does not yet contain a group of this kind, it will
// simply set this group (instead of copying values).
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	g := pmap.Group(group.name)
	if g == nil {
		pmap.m[group.name] = group
	} else {
		for k, v := range group.propsDict {
			if overwrite {
				g.Set(k, v)
			} else {
				g.Add(k, v)
			}
		}
	}
	return pmap
}

// Add adds a property to this property map, e.g.,
//
//	pm.Add("gridline-color", "#45475a")
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	key = strings.ToLower(key)
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Equals compares two property maps for equal key/value associations.
// Formatting differences of keys (case) have already been levelled by Add.
func (pmap *PropertyMap) Equals(other *PropertyMap) bool {
	n, m := 0, 0
	pmap.Each(func(string, Property) { n++ })
	other.Each(func(string, Property) { m++ })
	if n != m {
		return false
	}
	eq := true
	pmap.Each(func(key string, value Property) {
		v, ok := other.Property(key)
		if !ok || v != value {
			eq = false
		}
	})
	return eq
}
