package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Question", "3 of 10", 80)

	if !strings.Contains(h, AppName) {
		t.Error("header should contain the app name")
	}
	if !strings.Contains(h, "3 of 10") {
		t.Error("header should contain the status")
	}
	if w := lipgloss.Width(h); w < 80 {
		t.Errorf("header width = %d, want at least 80", w)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 60)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Select") {
		t.Errorf("footer missing hint: %q", f)
	}
}

func TestRenderFrame_Height(t *testing.T) {
	header := RenderHeader("t", "", 60)
	footer := RenderFooter(nil, 60)
	frame := RenderFrame(header, "body", footer, 60, 24)

	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct{ in, want int }{
		{200, 96},
		{80, 72},
		{10, 20},
	}
	for _, tt := range tests {
		if got := ContentWidth(tt.in); got != tt.want {
			t.Errorf("ContentWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
