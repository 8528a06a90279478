package ui

import (
	"bytes"
	"os"
	"testing"
)

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) active theme = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme_NoColorFlag(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	InitTheme(true)
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("colour helpers should return empty strings when colours are disabled")
	}
	if GetCurrentPalette() != NoColorPalette {
		t.Error("palette should follow the none theme")
	}
}

func TestInitTheme_NoColorEnv(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Errorf("NO_COLOR should select the none theme, got %q", GetCurrentTheme().Name)
	}
}

func TestInitTheme_Default(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	t.Setenv("NO_COLOR", "restored-on-cleanup")
	os.Unsetenv("NO_COLOR")
	InitTheme(false)
	if ColorGreen() != DarkTheme.Success {
		t.Errorf("ColorGreen() = %q, want dark theme success colour", ColorGreen())
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is never a terminal")
	}
}

func TestSectionHeader_NoColor(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	SetCurrentTheme(NoColorTheme)
	if got := SectionHeader("carol"); got != "== carol ==" {
		t.Errorf("SectionHeader() = %q, want %q", got, "== carol ==")
	}
}
