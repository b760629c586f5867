package key

// Shortcut is a modifier + key code combination. A keyboard event matches
// only when its masked modifiers are exactly Modifiers, so Ctrl+Shift+C does
// not match a Ctrl+C shortcut.
type Shortcut struct {
	Code      Code
	Modifiers Modifier
}

// Default clipboard shortcuts.
var (
	DefaultCopy  = Shortcut{Code: CodeC, Modifiers: ModCtrl}
	DefaultPaste = Shortcut{Code: CodeV, Modifiers: ModCtrl}
)

// IsZero returns true if the shortcut is unset.
func (s Shortcut) IsZero() bool {
	return s.Code == CodeNone
}

// Matches reports whether e is a down or up event for this shortcut.
// Text events never match.
func (s Shortcut) Matches(e Event) bool {
	if s.IsZero() || e.Type == TypeText {
		return false
	}
	return e.Code == s.Code && e.Modifiers.Masked() == s.Modifiers
}

// String returns the shortcut in the form accepted by ParseShortcut.
func (s Shortcut) String() string {
	if s.Modifiers.IsEmpty() {
		return s.Code.String()
	}
	return s.Modifiers.String() + "+" + s.Code.String()
}

// Shortcuts is the table of system-level key combinations intercepted by
// the root before ordinary key routing.
type Shortcuts struct {
	Copy  Shortcut
	Paste Shortcut
}

// DefaultShortcuts returns Ctrl+C / Ctrl+V.
func DefaultShortcuts() Shortcuts {
	return Shortcuts{Copy: DefaultCopy, Paste: DefaultPaste}
}

// IsCopy reports whether e is the copy shortcut.
func (s Shortcuts) IsCopy(e Event) bool {
	return s.Copy.Matches(e)
}

// IsPaste reports whether e is the paste shortcut.
func (s Shortcuts) IsPaste(e Event) bool {
	return s.Paste.Matches(e)
}

// IsShortcut reports whether e matches any intercepted shortcut.
func (s Shortcuts) IsShortcut(e Event) bool {
	return s.IsCopy(e) || s.IsPaste(e)
}
