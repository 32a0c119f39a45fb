package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	cases := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, c := range cases {
		if got := IsTooSmall(c.w, c.h); got != c.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", c.w, c.h, got, c.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 30-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight(30) = %d", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", HeaderInfo{Learner: "Ada", Score: "3/4"}, 80)
	for _, want := range []string{"Math Adventures", "Quiz", "Ada", "3/4"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Submit"}}, 80)
	if !strings.Contains(f, "Enter") || !strings.Contains(f, "Submit") {
		t.Errorf("footer = %q", f)
	}
}
