package style

import "testing"

func TestIsColor(t *testing.T) {
	for _, v := range []string{"#61afef", "#fff", "#80313244", "transparent", "rgb(40, 44, 52)", "white"} {
		if !Property(v).IsColor() {
			t.Errorf("expected %q to be a color value, isn't", v)
		}
	}
	for _, v := range []string{"#61afe", "solid", "url(x.svg)", "12px"} {
		if Property(v).IsColor() {
			t.Errorf("expected %q not to be a color value, is", v)
		}
	}
}

func TestStrictHex(t *testing.T) {
	if !Property("#61afef").IsStrictHexColor() {
		t.Error("expected 6-digit hex to pass the strict check")
	}
	if Property("#fff").IsStrictHexColor() {
		t.Error("expected 3-digit hex to fail the strict check")
	}
}

func TestColorConversion(t *testing.T) {
	c, err := Property("#61afef").Color()
	if err != nil {
		t.Fatal(err)
	}
	if HexString(c) != "#61afef" {
		t.Errorf("expected conversion to round-trip, have %s", HexString(c))
	}
	c, err = Property("#fff").Color()
	if err != nil {
		t.Fatal(err)
	}
	if HexString(c) != "#ffffff" {
		t.Errorf("expected short form to expand to #ffffff, have %s", HexString(c))
	}
	if _, err := Property("solid").Color(); err == nil {
		t.Error("expected non-color value to flag an error")
	}
}
