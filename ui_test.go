package nerf

import (
	"testing"
	"unicode/utf8"
)

func TestFitText(t *testing.T) {
	runes := utf8.RuneCountInString
	tests := []struct {
		text     string
		avail    int
		overflow TextOverflow
		want     string
	}{
		{"hello", 10, TextOverflowEllipsis, "hello"},
		{"hello world", 5, TextOverflowClip, "hello world"},
		{"hello world", 5, TextOverflowEllipsis, "hell…"},
		{"héllo", 3, TextOverflowEllipsis, "hé…"},
		{"hello", 1, TextOverflowEllipsis, "…"},
		{"hello", 0, TextOverflowEllipsis, ""},
	}
	for _, tt := range tests {
		if got := FitText(tt.text, tt.avail, tt.overflow, runes); got != tt.want {
			t.Errorf("fit %q in %d: %q, want %q", tt.text, tt.avail, got, tt.want)
		}
	}
}

func TestTextAlignOffset(t *testing.T) {
	tests := []struct {
		align        TextAlign
		width, avail int
		want         int
	}{
		{TextAlignLeft, 10, 100, 0},
		{TextAlignCenter, 10, 100, 45},
		{TextAlignRight, 10, 100, 90},
		{TextAlignRight, 100, 10, 0},
	}
	for _, tt := range tests {
		if got := tt.align.Offset(tt.width, tt.avail); got != tt.want {
			t.Errorf("align %d of %d in %d: %d, want %d", tt.align, tt.width, tt.avail, got, tt.want)
		}
	}
}

func TestTextStyle(t *testing.T) {
	s := TextStyle{}.Sized(12).Colored(rgb(0x123456)).Aligned(TextAlignRight).Overflowing(TextOverflowEllipsis)
	if s.Size != 12 || s.Color != rgb(0x123456) || s.Align != TextAlignRight || s.Overflow != TextOverflowEllipsis {
		t.Errorf("style %+v", s)
	}
}
