package view

import (
	"strings"
	"testing"
)

func TestIconSVGResolvesKnownName(t *testing.T) {
	svg := IconSVG("ShieldCheck")
	if !strings.Contains(svg, "<svg") {
		t.Fatal("expected SVG markup for a known icon")
	}
	if svg == defaultIcon.SVG {
		t.Fatal("expected a known icon to resolve to its own asset")
	}
}

func TestIconSVGFallsBackForUnknownNames(t *testing.T) {
	for _, name := range []string{"", "   ", "NoSuchIcon", "shieldcheck"} {
		if got := IconSVG(name); got != defaultIcon.SVG {
			t.Fatalf("expected default icon for %q", name)
		}
	}
}

func TestIconOptionsMatchDefinitions(t *testing.T) {
	options := IconOptions()
	if len(options) != len(iconDefinitions) {
		t.Fatalf("expected %d options, got %d", len(iconDefinitions), len(options))
	}
	for _, option := range options {
		if IconSVG(option.Key) == defaultIcon.SVG {
			t.Fatalf("selectable icon %s resolves to the fallback", option.Key)
		}
	}
}
