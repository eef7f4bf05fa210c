package style

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	lengthNone uint32 = 0

	lengthAbsolute uint32 = 0x0001
	lengthZero     uint32 = 0x0002
	kindMask       uint32 = 0x000f

	lengthPX uint32 = 0x0100
	lengthPT uint32 = 0x0200
	lengthEM uint32 = 0x0300
	lengthEX uint32 = 0x0400
	unitMask uint32 = 0xff00
)

// PX is the device unit for QSS pixel lengths: 1px = 3/4pt at 96 dpi.
const PX = dimen.PT * 3 / 4

// LengthT is an option type for QSS lengths. Lengths in a style sheet
// carry a px, pt, em or ex unit, or are a bare 0.
//
//	type LengthT
//	    = Zero
//	    | JustLength dimen     (px and pt, device units)
//	    | FontRel unit scalar  (em and ex)
type LengthT struct {
	d     dimen.DU
	scale float64
	flags uint32
}

// Zero returns a unit-less zero length.
func Zero() LengthT {
	return LengthT{flags: lengthZero}
}

// JustLength creates a QSS length with a fixed device-unit value of x.
func JustLength(x dimen.DU) LengthT {
	return LengthT{d: x, flags: lengthAbsolute}
}

// FontRel creates a font-relative QSS length (em and ex units).
func FontRel(unit string, scale float64) LengthT {
	flags := lengthEM
	if unit == "ex" {
		flags = lengthEX
	}
	return LengthT{scale: scale, flags: flags}
}

// Length parses a property value as a QSS length. Parsing a value which is
// not a length returns ok=false.
func Length(p Property) (LengthT, bool) {
	v := strings.TrimSpace(strings.ToLower(string(p)))
	if v == "0" {
		return Zero(), true
	}
	unit := ""
	for _, u := range []string{"px", "pt", "em", "ex"} {
		if strings.HasSuffix(v, u) {
			unit = u
			break
		}
	}
	if unit == "" {
		return LengthT{}, false
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, unit), 64)
	if err != nil {
		return LengthT{}, false
	}
	switch unit {
	case "px":
		return JustLength(dimen.DU(n * float64(PX))), true
	case "pt":
		return JustLength(dimen.DU(n * float64(dimen.PT))), true
	}
	return FontRel(unit, n), true
}

// IsLength checks wether a property value parses as a QSS length.
func (p Property) IsLength() bool {
	_, ok := Length(p)
	return ok
}

// ---------------------------------------------------------------------------

func (l LengthT) Match() *LengthMatcher {
	return &LengthMatcher{length: l}
}

type LengthMatcher struct {
	length LengthT
}

func (m *LengthMatcher) IsKind(l LengthT) *LengthMatcher {
	switch {
	case (m.length.flags & kindMask) == (l.flags & kindMask):
		return m
	case (m.length.flags&unitMask > 0) && (l.flags&unitMask > 0):
		return m
	}
	return nil
}

func (m *LengthMatcher) Just(du *dimen.DU) *LengthMatcher {
	if m.length.flags&lengthAbsolute > 0 {
		if du != nil {
			*du = m.length.d
		}
		return m
	}
	return nil
}

func (m *LengthMatcher) FontRel(scale *float64) *LengthMatcher {
	if m.length.flags&unitMask == lengthEM || m.length.flags&unitMask == lengthEX {
		if scale != nil {
			*scale = m.length.scale
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type LengthPatterns[T any] struct {
	Zero    T
	Just    T
	FontRel T
	Default T
}

func LengthPattern[T any](l LengthT) *LengthMatchExpr[T] {
	return &LengthMatchExpr[T]{length: l}
}

type LengthMatchExpr[T any] struct {
	length LengthT
}

func (m *LengthMatchExpr[T]) OneOf(patterns LengthPatterns[T]) T {
	switch {
	case m.length.flags&kindMask == lengthZero:
		return patterns.Zero
	case m.length.flags&lengthAbsolute > 0:
		return patterns.Just
	case m.length.flags&unitMask == lengthEM || m.length.flags&unitMask == lengthEX:
		return patterns.FontRel
	}
	return patterns.Default
}

func (m *LengthMatchExpr[T]) With(du *dimen.DU) *LengthMatchExpr[T] {
	*du = m.length.d
	return m
}

func (m *LengthMatchExpr[T]) Const(x T) T {
	return x
}
