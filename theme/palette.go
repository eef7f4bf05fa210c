package theme

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/qss/style"
)

// Palette maps semantic color roles to 6-digit hex literals. The built-in
// theme is written with literal colors; a palette describes which literal
// plays which role, so overrides can be substituted textually without
// touching the rule structure.
type Palette map[string]string

// Roles of the dark theme. Every hex value is unique within the palette,
// which is what makes textual substitution unambiguous.
const (
	RoleBackground     = "background"      // main window background
	RoleBackgroundAlt  = "background-alt"  // inputs, menus, scroll troughs
	RoleBackgroundDeep = "background-deep" // text on accent surfaces
	RoleSurface        = "surface"         // headers, tool tips, disabled fills
	RoleSurfaceRaised  = "surface-raised"  // buttons, handles, borders
	RoleSurfaceHigh    = "surface-high"    // hover fills, strong borders
	RoleText           = "text"
	RoleTextBright     = "text-bright"
	RoleTextDim        = "text-dim"
	RoleTextDisabled   = "text-disabled"
	RoleAccent         = "accent"
	RoleAccentHover    = "accent-hover" // derived from accent when overridden
	RoleAccentDim      = "accent-dim"   // derived from accent when overridden
	RoleSelection      = "selection"    // grid row selection
	RoleRowAlt         = "row-alt"      // alternating grid rows
)

// Default returns the palette of the built-in dark theme.
func Default() Palette {
	return Palette{
		RoleBackground:     "#282c34",
		RoleBackgroundAlt:  "#21252b",
		RoleBackgroundDeep: "#1b1f23",
		RoleSurface:        "#2c313a",
		RoleSurfaceRaised:  "#3b4048",
		RoleSurfaceHigh:    "#4b5263",
		RoleText:           "#abb2bf",
		RoleTextBright:     "#d7dae0",
		RoleTextDim:        "#9da5b4",
		RoleTextDisabled:   "#5c6370",
		RoleAccent:         "#61afef",
		RoleAccentHover:    "#74bdf2",
		RoleAccentDim:      "#3f6a94",
		RoleSelection:      "#2c313c",
		RoleRowAlt:         "#262b33",
	}
}

// Roles returns the palette's role names, sorted.
func (pal Palette) Roles() []string {
	roles := make([]string, 0, len(pal))
	for role := range pal {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Validate checks that every role is known and every value is a strict
// 6-digit hex literal.
func (pal Palette) Validate() error {
	def := Default()
	for role, hex := range pal {
		if _, ok := def[role]; !ok {
			return fmt.Errorf("theme: unknown palette role %q", role)
		}
		if !style.Property(hex).IsStrictHexColor() {
			return fmt.Errorf("theme: role %q: not a 6-digit hex color: %q", role, hex)
		}
	}
	return nil
}

// MergedWith layers overrides over the receiving palette and returns the
// result; neither input is modified. When the accent is overridden but its
// derived shades are not, hover and dim shades are recomputed from the new
// accent so the theme stays coherent.
func (pal Palette) MergedWith(overrides Palette) Palette {
	merged := make(Palette, len(pal))
	for role, hex := range pal {
		merged[role] = hex
	}
	for role, hex := range overrides {
		merged[role] = hex
	}
	if accent, ok := overrides[RoleAccent]; ok {
		if _, ok := overrides[RoleAccentHover]; !ok {
			merged[RoleAccentHover] = shade(accent, +0.08)
		}
		if _, ok := overrides[RoleAccentDim]; !ok {
			merged[RoleAccentDim] = shade(accent, -0.18)
		}
	}
	return merged
}

// shade lightens (positive delta) or darkens (negative delta) a hex color
// in Lab space, clamped to the RGB gamut.
func shade(hex string, delta float64) string {
	c, err := style.Property(hex).Color()
	if err != nil {
		return hex
	}
	l, a, b := c.Lab()
	shifted := colorful.Lab(l+delta, a, b).Clamped()
	return style.HexString(shifted)
}
