package style

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Qt accepts #rgb, #rrggbb and #aarrggbb color literals in style sheets.
// The theme itself sticks to 6-digit hex, which is what asset checks
// enforce; the shorter and alpha-carrying forms are still recognized as
// syntactically valid colors.
var (
	hexColorPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	anyColorPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorPattern = regexp.MustCompile(`^rgba?\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*(,\s*\d+%?\s*)?\)$`)
)

// Color keywords Qt resolves without a palette lookup. The theme uses only
// "transparent" and "none", but user style sheets may carry SVG color names;
// we keep the handful that show up in practice.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"yellow":  "#ffff00",
	"magenta": "#ff00ff",
	"cyan":    "#00ffff",
}

// IsColor checks wether a property value is syntactically a color:
// a hex literal, an rgb()/rgba() function, a known color name, or the
// "transparent" keyword.
func (p Property) IsColor() bool {
	v := strings.TrimSpace(strings.ToLower(string(p)))
	if v == "transparent" {
		return true
	}
	if anyColorPattern.MatchString(v) || funcColorPattern.MatchString(v) {
		return true
	}
	_, ok := namedColors[v]
	return ok
}

// IsStrictHexColor checks a color literal against the 6-digit hex pattern
// the theme is normalized to.
func (p Property) IsStrictHexColor() bool {
	return hexColorPattern.MatchString(strings.TrimSpace(string(p)))
}

// Color converts a property value into a colorful.Color. Only values for
// which IsColor holds (minus "transparent", which has no RGB meaning)
// convert successfully.
func (p Property) Color() (colorful.Color, error) {
	v := strings.TrimSpace(strings.ToLower(string(p)))
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	if strings.HasPrefix(v, "#") && len(v) == 4 { // #rgb => #rrggbb
		v = fmt.Sprintf("#%c%c%c%c%c%c", v[1], v[1], v[2], v[2], v[3], v[3])
	}
	if strings.HasPrefix(v, "#") && len(v) == 9 { // #aarrggbb => drop alpha
		v = "#" + v[3:]
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("style: not a color value: %q", p)
	}
	return c, nil
}

// HexString formats a color the way the theme spells color literals:
// lower-case 6-digit hex.
func HexString(c colorful.Color) string {
	return strings.ToLower(c.Hex())
}
