package input

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNone, "none"},
		{KindPointerDown, "pointer-down"},
		{KindPointerUp, "pointer-up"},
		{KindPointerDrag, "pointer-drag"},
		{KindPointerMove, "pointer-move"},
		{KindScroll, "scroll"},
		{KindKeyDown, "key-down"},
		{KindKeyUp, "key-up"},
		{KindText, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKindClassification(t *testing.T) {
	for _, k := range []Kind{KindPointerDown, KindPointerUp, KindPointerDrag, KindPointerMove} {
		if !k.IsPointer() || k.IsKeyboard() {
			t.Errorf("%s should be a pointer kind", k)
		}
	}
	for _, k := range []Kind{KindKeyDown, KindKeyUp, KindText} {
		if k.IsPointer() || !k.IsKeyboard() {
			t.Errorf("%s should be a keyboard kind", k)
		}
	}
	if KindScroll.IsPointer() || KindScroll.IsKeyboard() {
		t.Error("scroll is neither pointer nor keyboard")
	}
}
