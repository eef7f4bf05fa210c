package style

import (
	"testing"
)

func TestPropertyURL(t *testing.T) {
	p := Property("url($ICON_DIR/down-arrow.svg)")
	if !p.IsURL() {
		t.Fatalf("expected %q to be recognized as url reference, isn't", p)
	}
	if p.URL() != "$ICON_DIR/down-arrow.svg" {
		t.Errorf("expected url payload, have %q", p.URL())
	}
	q := Property(`url("icons/check.svg")`)
	if q.URL() != "icons/check.svg" {
		t.Errorf("expected quotes to be stripped, have %q", q.URL())
	}
	if Property("#abb2bf").IsURL() {
		t.Error("color literal mistaken for url reference")
	}
}

func TestPropertyGroups(t *testing.T) {
	if g := GroupNameFromPropertyKey("border-top-left-radius"); g != PGBorder {
		t.Errorf("expected border radius to group as Border, is %s", g)
	}
	if g := GroupNameFromPropertyKey("selection-background-color"); g != PGSelection {
		t.Errorf("expected selection color to group as Selection, is %s", g)
	}
	if g := GroupNameFromPropertyKey("no-such-property"); g != PGX {
		t.Errorf("expected unknown key to group as X, is %s", g)
	}
}

func TestSplitCompoundPadding(t *testing.T) {
	kv, err := SplitCompoundProperty("padding", "4px 8px")
	if err != nil {
		t.Fatal(err)
	}
	if len(kv) != 4 {
		t.Fatalf("expected 4 components, have %d", len(kv))
	}
	m := map[string]Property{}
	for _, x := range kv {
		m[x.Key] = x.Value
	}
	if m["padding-top"] != "4px" || m["padding-bottom"] != "4px" {
		t.Errorf("vertical paddings wrong: %v", m)
	}
	if m["padding-left"] != "8px" || m["padding-right"] != "8px" {
		t.Errorf("horizontal paddings wrong: %v", m)
	}
}

func TestSplitCompoundBorder(t *testing.T) {
	kv, err := SplitCompoundProperty("border", "1px solid #3b4048")
	if err != nil {
		t.Fatal(err)
	}
	if len(kv) != 12 {
		t.Fatalf("expected 12 components, have %d", len(kv))
	}
	m := map[string]Property{}
	for _, x := range kv {
		m[x.Key] = x.Value
	}
	if m["border-top-width"] != "1px" {
		t.Errorf("expected border-top-width=1px, have %s", m["border-top-width"])
	}
	if m["border-left-style"] != "solid" {
		t.Errorf("expected border-left-style=solid, have %s", m["border-left-style"])
	}
	if m["border-bottom-color"] != "#3b4048" {
		t.Errorf("expected border-bottom-color=#3b4048, have %s", m["border-bottom-color"])
	}
}

func TestPropertyMapEquals(t *testing.T) {
	a := NewPropertyMap()
	a.Add("color", "#abb2bf")
	a.Add("padding", "4px")
	b := NewPropertyMap()
	b.Add("padding", "4px")
	b.Add("color", "#abb2bf")
	if !a.Equals(b) {
		t.Error("expected property maps with equal associations to be equal")
	}
	b.Add("color", "#ffffff")
	if a.Equals(b) {
		t.Error("expected differing values to break equality")
	}
}
