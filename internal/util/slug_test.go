package util

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"before upgrade", "before-upgrade"},
		{"Already-Slugged", "already-slugged"},
		{"  padded  out  ", "padded-out"},
		{"Café Thème", "cafe-theme"},
		{"auto-edit", "auto-edit"},
		{"punct!!!everywhere???", "punct-everywhere"},
		{"---", ""},
		{"", ""},
		{"MixedCASE123", "mixedcase123"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
