package theme

import "testing"

func TestLookupFallbacks(t *testing.T) {
	if got := ColorFor("blue").Hex; got != "#93c5fd" {
		t.Errorf("ColorFor(blue).Hex = %q", got)
	}
	if got := ColorFor("mauve").Name; got != FallbackColor {
		t.Errorf("unknown colour fell back to %q, want %q", got, FallbackColor)
	}
	if got := IconFor("brain").Name; got != "brain" {
		t.Errorf("IconFor(brain) = %q", got)
	}
	if got := IconFor("").Name; got != FallbackIcon {
		t.Errorf("empty icon fell back to %q, want %q", got, FallbackIcon)
	}
}

func TestMembership(t *testing.T) {
	for _, name := range ColorNames() {
		if !IsColor(name) {
			t.Errorf("IsColor(%q) = false", name)
		}
	}
	for _, name := range IconNames() {
		if !IsIcon(name) {
			t.Errorf("IsIcon(%q) = false", name)
		}
	}
	if IsColor("bg-green-300") {
		t.Error("raw CSS class should not be a palette colour")
	}
	if len(Colors()) != 6 || len(Icons()) != 9 {
		t.Errorf("palette sizes = %d colours, %d icons", len(Colors()), len(Icons()))
	}
}

func TestColorsReturnsCopy(t *testing.T) {
	c := Colors()
	c[0].Hex = "#000000"
	if ColorFor(c[0].Name).Hex == "#000000" {
		t.Error("Colors() exposed the internal palette")
	}
}
