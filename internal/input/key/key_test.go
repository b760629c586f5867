package key

import "testing"

func TestLetterCode(t *testing.T) {
	tests := []struct {
		r    rune
		code Code
		ok   bool
	}{
		{'c', CodeC, true},
		{'C', CodeC, true},
		{'v', CodeV, true},
		{'7', Code(55), true},
		{'!', CodeNone, false},
		{'é', CodeNone, false},
	}

	for _, tt := range tests {
		code, ok := LetterCode(tt.r)
		if code != tt.code || ok != tt.ok {
			t.Errorf("LetterCode(%q) = (%v, %v), want (%v, %v)", tt.r, code, ok, tt.code, tt.ok)
		}
	}
}

func TestCodeValuesMatchHost(t *testing.T) {
	if CodeC != 67 {
		t.Errorf("CodeC = %d, want 67", CodeC)
	}
	if CodeV != 86 {
		t.Errorf("CodeV = %d, want 86", CodeV)
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{CodeNone, "None"},
		{CodeC, "C"},
		{Code(53), "5"},
		{CodeEnter, "Enter"},
		{CodeF1, "F1"},
		{CodeF12, "F12"},
		{Code(250), "Code(250)"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.expected {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestCodeFromName(t *testing.T) {
	tests := []struct {
		name     string
		expected Code
	}{
		{"c", CodeC},
		{"V", CodeV},
		{"enter", CodeEnter},
		{"Return", CodeEnter},
		{"esc", CodeEscape},
		{"f5", CodeF1 + 4},
		{"F12", CodeF12},
		{"F13", CodeNone},
		{"Delete", CodeDelete},
		{"bogus", CodeNone},
	}

	for _, tt := range tests {
		if got := CodeFromName(tt.name); got != tt.expected {
			t.Errorf("CodeFromName(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestFunctionCode(t *testing.T) {
	if c, ok := FunctionCode(3); !ok || c != CodeF1+2 {
		t.Errorf("FunctionCode(3) = %v, %v", c, ok)
	}
	if _, ok := FunctionCode(0); ok {
		t.Error("FunctionCode(0) should fail")
	}
}
